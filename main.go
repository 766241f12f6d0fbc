package main

import (
	"os"

	"github.com/thenoetrevino/plano/cmd"
	"github.com/thenoetrevino/plano/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
