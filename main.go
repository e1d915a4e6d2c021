package main

import "github.com/nextlevelbuilder/mathbot/cmd"

func main() {
	cmd.Execute()
}
