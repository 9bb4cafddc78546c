package main

import (
	"github.com/tvasilyev/rosterbook/internal/cli"
)

func main() {
	cli.Execute()
}
