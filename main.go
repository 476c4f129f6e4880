package main

import "github.com/nanoteck137/thumbgen/cli"

func main() {
	cli.Execute()
}
