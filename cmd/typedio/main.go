// Command typedio asks for typed values on the console.
package main

import (
	"os"

	"github.com/nao1215/typedio/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
