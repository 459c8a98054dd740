package main

import "github.com/cchiddy480/PokePort/internal/cli"

func main() {
	cli.Run()
}
