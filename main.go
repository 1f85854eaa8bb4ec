package main

import "github.com/Jasen77/lefties-righties/cmd"

func main() {
	cmd.Execute()
}
