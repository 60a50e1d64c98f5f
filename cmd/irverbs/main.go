package main

import "ir-verbs/cmd/cli"

func main() {
	cli.RunCLI()
}
