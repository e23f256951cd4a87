// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"planbridge/server/internal/client"
	"planbridge/server/internal/logging"
)

var (
	uploadSession  bool
	uploadPrefix   string
	uploadTimeout  time.Duration
	uploadInsecure bool
)

// uploadCmd ships local files to the server's session artifact store.
var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload artifacts to the Planbridge server",
	Long: `The upload command transfers local files into the server-side artifact
store of a session. Small files travel batched in a single message; large
ones are chunked with per-chunk checksums. The server reports per-artifact
verification results.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd, uploadTimeout)
		defer cancel()

		c, err := dialClient(ctx, sessionFromEnv(uploadSession), uploadInsecure)
		if err != nil {
			pterm.Println(logging.PresentError("Failed to connect to the Planbridge server", err))
			return err
		}
		defer c.Close()

		files := client.UploadFileSet(uploadPrefix, args)

		cursor.Hide()
		defer cursor.Show()
		bar, _ := pterm.DefaultProgressbar.
			WithTotal(len(files)).
			WithTitle("uploading").
			WithRemoveWhenDone(true).
			Start()
		seen := make(map[string]bool, len(files))
		progress := func(name string, sent, total int64) {
			if sent >= total && !seen[name] {
				seen[name] = true
				bar.Increment()
			}
		}

		summaries, err := c.Upload(ctx, files, progress)
		_, _ = bar.Stop()
		if err != nil {
			pterm.Println(logging.PresentError("Upload failed", err))
			return err
		}

		failed := 0
		for _, s := range summaries {
			if s.IsCrcSuccessful {
				pterm.Println("✅ " + s.Name)
			} else {
				pterm.Println("❌ " + s.Name + " (verification failed)")
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d artifact(s) failed verification", failed)
		}
		if len(summaries) == 0 {
			return errors.New("server reported no artifacts")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().BoolVar(&uploadSession, "session", false, "Reuse the session id from PLANBRIDGE_SESSION")
	uploadCmd.Flags().StringVar(&uploadPrefix, "prefix", "files", "Artifact name prefix (e.g. jars, files)")
	uploadCmd.Flags().DurationVar(&uploadTimeout, "timeout", 10*time.Minute, "Overall call timeout")
	uploadCmd.Flags().BoolVar(&uploadInsecure, "insecure", false, "Connect without TLS")
}
