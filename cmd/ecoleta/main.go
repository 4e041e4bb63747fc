package main

import "github.com/rafabene/ecoleta/cmd/ecoleta/commands"

func main() {
	commands.Execute()
}
