// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// GRPCErrorType represents the category of gRPC error
type GRPCErrorType int

const (
	GRPCErrorUnknown GRPCErrorType = iota
	GRPCErrorNetwork
	GRPCErrorAuth
	GRPCErrorTimeout
	GRPCErrorInternal
	GRPCErrorUnavailable
)

// ParseGRPCError categorizes a gRPC error message
func ParseGRPCError(errMsg string) GRPCErrorType {
	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "rst_stream") || strings.Contains(lower, "connection reset") {
		return GRPCErrorNetwork
	}
	if strings.Contains(lower, "internal_error") {
		return GRPCErrorInternal
	}
	if strings.Contains(lower, "unavailable") || strings.Contains(lower, "service unavailable") {
		return GRPCErrorUnavailable
	}
	if strings.Contains(lower, "deadline") || strings.Contains(lower, "timeout") {
		return GRPCErrorTimeout
	}
	if strings.Contains(lower, "unauthenticated") || strings.Contains(lower, "unauthorized") {
		return GRPCErrorAuth
	}

	return GRPCErrorUnknown
}

// FormatStreamError formats a gRPC stream error in a user-friendly way
func FormatStreamError(errMsg string) string {
	errType := ParseGRPCError(errMsg)

	var builder strings.Builder

	builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Connection Lost"))
	builder.WriteString("\n\n")

	switch errType {
	case GRPCErrorNetwork:
		builder.WriteString("The connection to the Planbridge server was interrupted unexpectedly.\n")
		builder.WriteString("This usually happens when:\n")
		builder.WriteString("  • Your network connection was disrupted\n")
		builder.WriteString("  • The network path to the server was interrupted\n")
		builder.WriteString("  • A firewall or proxy closed the connection\n")

	case GRPCErrorInternal:
		builder.WriteString("An internal error occurred on the Planbridge server.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • The server encountered an unexpected issue\n")
		builder.WriteString("  • The server is being updated or restarted\n")
		builder.WriteString("  • There was a temporary problem processing your request\n")

	case GRPCErrorUnavailable:
		builder.WriteString("The Planbridge server is currently unavailable.\n")
		builder.WriteString("Possible reasons:\n")
		builder.WriteString("  • The server is under maintenance\n")
		builder.WriteString("  • The server is temporarily overloaded\n")
		builder.WriteString("  • There's a service outage\n")

	case GRPCErrorTimeout:
		builder.WriteString("The connection to the Planbridge server timed out.\n")
		builder.WriteString("This could be due to:\n")
		builder.WriteString("  • Slow or unstable network connection\n")
		builder.WriteString("  • The server taking too long to respond\n")
		builder.WriteString("  • Network latency issues\n")

	case GRPCErrorAuth:
		builder.WriteString("Authentication with the Planbridge server failed.\n")
		builder.WriteString("To fix this:\n")
		builder.WriteString("  • Run 'planbridge connect' to authenticate again\n")
		builder.WriteString("  • Your session may have expired\n")

	default:
		builder.WriteString("The session stream was interrupted.\n")
		builder.WriteString("This could mean:\n")
		builder.WriteString("  • Network connection dropped\n")
		builder.WriteString("  • Server is restarting or under maintenance\n")
		builder.WriteString("  • Session timeout\n")
	}

	builder.WriteString("\n")

	if errType == GRPCErrorAuth {
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please run 'planbridge connect' and try again"))
	} else {
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Please retry the command"))
	}

	builder.WriteString("\n")

	if strings.TrimSpace(errMsg) != "" {
		builder.WriteString("\n")
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(errMsg)))
	}

	return builder.String()
}

// PresentStreamError displays a formatted stream error
func PresentStreamError(errMsg string) {
	fmt.Println()
	fmt.Println(FormatStreamError(errMsg))
	fmt.Println()
}
