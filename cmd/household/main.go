package main

import "household/internal/cli"

func main() {
	cli.Execute()
}
