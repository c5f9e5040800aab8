package main

import "github.com/xvierd/focusflow/cmd"

func main() {
	cmd.Execute()
}
