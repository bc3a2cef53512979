// Package main - stocksrv CLI
//
// Usage:
//
//	go run ./cmd/stocksrv serve
//	go run ./cmd/stocksrv migrate
package main

import (
	"os"

	"github.com/gurohotvedt/cab230serverside/cmd/stocksrv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
