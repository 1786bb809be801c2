package main

import "github.com/teamtrace/tsheet/cmd"

func main() {
	cmd.Execute()
}
