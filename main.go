package main

import (
	"os"

	"github.com/abhisek/solvo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
