package main

import (
	"os"

	"github.com/saherflow/flowportal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
