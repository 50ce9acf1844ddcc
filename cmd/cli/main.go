package main

import "github.com/hailam/randfile/internal/cli"

func main() {
	cli.Execute()
}
