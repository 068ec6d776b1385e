package main

import "github.com/dannyvin11/resy-bot/cmd"

func main() {
	cmd.Execute()
}
