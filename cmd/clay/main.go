package main

import (
	"os"

	"github.com/spaghettifunk/clay/cmd/clay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
