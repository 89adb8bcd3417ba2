package main

import (
	"os"

	"github.com/go-drift/inview/cmd/inview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
