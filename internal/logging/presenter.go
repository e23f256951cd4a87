// Copyright (c) 2026 Planbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import "fmt"

// PresentError prefixes an error with a short context line for terminal
// display, masking any credentials the message may carry. Returns "" for
// a nil error so callers can print unconditionally.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(err.Error()))
}
