package main

import (
	"fmt"
	"os"

	"citylaw/cmd/citylaw/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
