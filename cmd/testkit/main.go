package main

import "github.com/LeJamon/xrpl-testkit/internal/cli"

func main() {
	cli.Execute()
}
