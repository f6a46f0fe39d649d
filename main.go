package main

import (
	"os"

	"github.com/mpelletier/liaison/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
