package main

import (
	"os"

	"github.com/msto63/mLang/cmd/mlangc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
