package main

import "github.com/hailam/randfile/internal/cli"

// Kept at the module root so `go install github.com/hailam/randfile@latest` works.
func main() {
	cli.Execute()
}
