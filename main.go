package main

import (
	"fmt"
	"os"

	"github.com/arcanaland/carddeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "carddeck:", err)
		os.Exit(1)
	}
}
