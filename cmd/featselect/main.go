package main

import (
	"github.com/segmint-labs/featselect-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
