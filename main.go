package main

import "github.com/lepinkainen/moviequiz/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
