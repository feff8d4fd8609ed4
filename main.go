package main

import "github.com/nathanhack/leech/cmd"

func main() {
	cmd.Execute()
}
