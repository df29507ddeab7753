package main

import (
	"os"

	"github.com/katalvlaran/mazegen/cmd"
	"github.com/katalvlaran/mazegen/cmd/generate"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	generateCmd := generate.NewGenerateCommand()
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
