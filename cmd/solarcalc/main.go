package main

import (
	"os"

	"github.com/suryakart/suryakart/pkg/calculator"
)

func main() {
	if err := rootCmd(calculator.Configured()).Execute(); err != nil {
		os.Exit(1)
	}
}
