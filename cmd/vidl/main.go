package main

import (
	"os"

	"github.com/vidl-dev/vidl/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
