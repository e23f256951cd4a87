// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"planbridge/server/internal/auth"
	"planbridge/server/internal/client"
	"planbridge/server/internal/config"
)

// dialClient connects to the saved server using the stored token. sessionID
// may be empty, in which case a fresh session is opened.
func dialClient(ctx context.Context, sessionID string, insecure bool) (*client.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	token, err := auth.LoadToken()
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return client.Connect(ctx, client.Options{
		Addr:      cfg.ServerAddr,
		Token:     token,
		Insecure:  insecure,
		UserID:    userID(cfg),
		SessionID: sessionID,
	})
}

// cmdContext derives the command context, applying a timeout when one is set.
func cmdContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

// sessionFromEnv returns the ambient session id when reuse was requested.
// An empty result makes dialClient open a fresh session.
func sessionFromEnv(reuse bool) string {
	if !reuse {
		return ""
	}
	return os.Getenv("PLANBRIDGE_SESSION")
}

// userID resolves the caller identity, falling back to the OS user.
func userID(cfg config.Config) string {
	if cfg.UserID != "" {
		return cfg.UserID
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}

// startInlineSpinner animates a single-line spinner followed by text,
// redrawing the same terminal line at the given interval. It returns a
// function that stops the animation and clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
