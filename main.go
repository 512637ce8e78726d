package main

import "github.com/chatblocks/chatblocks/cmd"

func main() {
	cmd.Execute()
}
