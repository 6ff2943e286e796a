package main

import (
	"fmt"
	"os"

	"shelf/cmd/migrate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
