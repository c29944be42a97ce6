package main

import "github.com/mcoot/pebbles-game/internal/cli"

func main() {
	cli.Execute()
}
