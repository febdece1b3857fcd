package main

import (
	"fmt"
	"os"

	"github.com/Aviral-Dwivedi-0/ai-customer-support-bot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
