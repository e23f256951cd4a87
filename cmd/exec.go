// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"planbridge/server/internal/engine"
	"planbridge/server/internal/logging"
)

var (
	execSession  bool
	execTimeout  time.Duration
	execInsecure bool
	execMaxRows  int
)

// execCmd runs a SQL statement against the configured server and renders
// the streamed result as a table. Queries stream row batches; commands
// (DDL, writes) report either their tabular result or an affected-row count.
var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run SQL against the Planbridge server",
	Long: `The exec command sends a SQL statement to the configured server and prints
the result. Each invocation opens a fresh session unless --session reuses
the ambient PLANBRIDGE_SESSION value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(args[0])
		if query == "" {
			return errors.New("a SQL statement is required")
		}

		ctx, cancel := cmdContext(cmd, execTimeout)
		defer cancel()

		c, err := dialClient(ctx, sessionFromEnv(execSession), execInsecure)
		if err != nil {
			pterm.Println(logging.PresentError("Failed to connect to the Planbridge server", err))
			return err
		}
		defer c.Close()

		cursor.Hide()
		defer cursor.Show()
		stop := startInlineSpinner(cmd.OutOrStdout(), "executing", []string{"-", "\\", "|", "/"}, 100*time.Millisecond)

		stream, err := c.ExecuteSQL(ctx, query)
		if err != nil {
			stop()
			pterm.Println(logging.PresentError("Execution failed", err))
			return err
		}

		var (
			result   *engine.Frame
			rowCount int64
			affected int64
			command  bool
		)
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				stop()
				pterm.Println(logging.PresentError("Execution failed", err))
				return err
			}
			if batch := resp.GetResultBatch(); batch != nil {
				if len(batch.Data) == 0 {
					// Eager command acknowledged with a row count only.
					command = true
					affected = batch.RowCount
					continue
				}
				frame, err := engine.DecodeFrame(batch.Data)
				if err != nil {
					stop()
					return fmt.Errorf("decode result batch: %w", err)
				}
				rowCount += batch.RowCount
				result = appendFrame(result, frame)
				continue
			}
			if res := resp.GetSqlCommandResult(); res != nil {
				command = true
				if lr := res.Relation.GetLocalRelation(); lr != nil && len(lr.Data) > 0 {
					frame, err := engine.DecodeFrame(lr.Data)
					if err != nil {
						stop()
						return fmt.Errorf("decode command result: %w", err)
					}
					rowCount += int64(len(frame.Rows))
					result = appendFrame(result, frame)
				}
			}
		}
		stop()

		if result == nil || len(result.Columns) == 0 {
			if command {
				pterm.Printf("OK, %d row(s) affected\n", affected)
				return nil
			}
			pterm.Println("OK, empty result")
			return nil
		}
		renderFrame(result, rowCount)
		return nil
	},
}

func appendFrame(dst, src *engine.Frame) *engine.Frame {
	if dst == nil {
		return src
	}
	dst.Rows = append(dst.Rows, src.Rows...)
	return dst
}

func renderFrame(f *engine.Frame, rowCount int64) {
	data := pterm.TableData{f.Columns}
	shown := len(f.Rows)
	if execMaxRows > 0 && shown > execMaxRows {
		shown = execMaxRows
	}
	for _, row := range f.Rows[:shown] {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
			} else {
				cells[i] = fmt.Sprint(v)
			}
		}
		data = append(data, cells)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if int64(shown) < rowCount {
		pterm.Printf("(%d of %d rows shown)\n", shown, rowCount)
	} else {
		pterm.Printf("(%d rows)\n", rowCount)
	}
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().BoolVar(&execSession, "session", false, "Reuse the session id from PLANBRIDGE_SESSION")
	execCmd.Flags().DurationVar(&execTimeout, "timeout", 2*time.Minute, "Overall call timeout")
	execCmd.Flags().BoolVar(&execInsecure, "insecure", false, "Connect without TLS")
	execCmd.Flags().IntVar(&execMaxRows, "max-rows", 500, "Max rows to print (0 for all)")
}
