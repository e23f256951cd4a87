// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for Planbridge.
// It implements the server entry point plus client subcommands for
// connecting to a server, running SQL, and uploading artifacts.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showVersion bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "planbridge",
	Short: "Session-oriented remote plan protocol",
	Long: `Planbridge runs a gRPC server that evaluates relational plans on behalf
of remote sessions, and bundles a thin client for talking to one.

Start a server with 'planbridge serve', then point the client commands
at it with 'planbridge connect'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("planbridge %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
}
