// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content, starting at (anchorX, anchorY) in screen
// coordinates. Truncation is ANSI-aware so escape sequences in the
// underlying view survive on both sides of the overlay.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		lineIndex := anchorY + index
		if lineIndex < 0 || lineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[lineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		var spliced strings.Builder
		if anchorX > 0 {
			spliced.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		// Reset around the overlay so styling cannot bleed either way.
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			spliced.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[lineIndex] = spliced.String()
	}

	return strings.Join(viewLines, "\n")
}

// CenterOverlay splices an overlay panel into the middle of a rendered
// view of the given dimensions. Panels taller or wider than the view
// anchor at the top-left edge rather than clipping symmetrically.
func CenterOverlay(view, overlay string, viewWidth, viewHeight int) string {
	overlayLines := strings.Split(overlay, "\n")
	if len(overlayLines) == 0 {
		return view
	}

	anchorX := (viewWidth - ansi.StringWidth(overlayLines[0])) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	anchorY := (viewHeight - len(overlayLines)) / 2
	if anchorY < 0 {
		anchorY = 0
	}
	return SpliceOverlay(view, overlayLines, anchorX, anchorY)
}

// TruncateLabel shortens text to fit maxWidth display columns, marking
// cut text with an ellipsis. Widths are display columns, not bytes.
func TruncateLabel(text string, maxWidth int) string {
	if ansi.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 1 {
		return strings.Repeat("…", max(maxWidth, 0))
	}
	return ansi.Truncate(text, maxWidth-1, "…")
}
