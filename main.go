package main

import "github.com/sadopc/dailies/internal/cli"

func main() {
	cli.Execute()
}
