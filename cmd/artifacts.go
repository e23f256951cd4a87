// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"planbridge/server/internal/artifact"
	"planbridge/server/internal/config"
)

var artifactsConfigPath string

// artifactsCmd inspects the server-side artifact ledger. It reads the
// ledger database directly, so it runs on the server host, not through
// the protocol.
var artifactsCmd = &cobra.Command{
	Use:   "artifacts <session-id>",
	Short: "List verified artifacts recorded for a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer(artifactsConfigPath)
		if err != nil {
			return err
		}
		ledger, err := artifact.OpenLedger(cfg.Artifacts.Ledger)
		if err != nil {
			return fmt.Errorf("open artifact ledger: %w", err)
		}
		defer ledger.Close()

		records, err := ledger.List(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(records) == 0 {
			pterm.Println("No artifacts recorded for this session.")
			return nil
		}

		data := pterm.TableData{{"NAME", "SIZE", "CRC32", "ACCEPTED"}}
		for _, r := range records {
			data = append(data, []string{
				r.Name,
				fmt.Sprintf("%d", r.SizeBytes),
				fmt.Sprintf("%08x", r.Crc),
				r.AcceptedAt.Format(time.RFC3339),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(artifactsCmd)
	artifactsCmd.Flags().StringVarP(&artifactsConfigPath, "config", "c", "", "Path to server config file")
}
