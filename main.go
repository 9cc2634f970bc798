package main

import "jvcheck/cmd"

func main() {
	cmd.Execute()
}
