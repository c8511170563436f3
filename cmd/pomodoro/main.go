package main

import "github.com/xvierd/pomodoro-cli/cmd"

func main() {
	cmd.Execute()
}
