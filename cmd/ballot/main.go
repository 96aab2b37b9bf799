package main

import "github.com/aussiebroadwan/ballotbox/cmd/ballot/commands"

func main() {
	commands.Execute()
}
