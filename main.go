// Package main is the entry point for the Planbridge binary.
// It serves the plan protocol over gRPC and ships a small client CLI
// for talking to a running server.
package main

import (
	"planbridge/server/cmd"
)

func main() {
	cmd.Execute()
}
