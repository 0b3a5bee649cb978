package cli

import (
	"strings"
	"unicode"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight
)

const (
	boxTopLeft     = "╒"
	boxTopRight    = "╕"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	ellipsis       = "…"

	// DefaultWidth is the banner width used by sortctl's text reports.
	DefaultWidth = 72
)

// Banner boxes each line of s into a frame width columns wide. Lines that
// don't fit are cut and end in an ellipsis. It returns "" for an empty s,
// a width too small for the frame, or an unknown alignment.
func Banner(s string, width int, alignment int) string {
	inner := width - 2 //nolint:mnd // two side bars
	if s == "" || inner < 1 {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	parts := make([]string, 0, len(lines)+2) //nolint:mnd
	parts = append(parts, boxTopLeft+strings.Repeat(boxTop, inner)+boxTopRight)

	for _, l := range lines {
		padded, ok := pad(l, inner, alignment)
		if !ok {
			return ""
		}

		parts = append(parts, boxSide+padded+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n")
}

func pad(text string, width int, alignment int) (string, bool) {
	length := graphicLen(text)
	if length > width {
		text = truncate(text, width-1) + ellipsis
		length = width
	}

	diff := width - length

	switch alignment {
	case AlignLeft:
		return text + strings.Repeat(" ", diff), true
	case AlignRight:
		return strings.Repeat(" ", diff) + text, true
	case AlignCenter:
		left := diff / 2 //nolint:mnd

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left), true
	default:
		return "", false
	}
}

func graphicLen(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncate keeps the first n graphic runes of s.
func truncate(s string, n int) string {
	var b strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		b.WriteRune(r)
	}

	return b.String()
}
