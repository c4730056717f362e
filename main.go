package main

import "github.com/mouse-blink/makeparse/cmd"

func main() {
	cmd.Execute()
}
