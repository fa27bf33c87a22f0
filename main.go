package main

import (
	"os"

	"github.com/quizbee/adjudicator/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
