package cli

import (
	"context"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-containers/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

const (
	DefaultTerminalWidth = 80

	borderWidth = 2
)

// TerminalWidth reads COLUMNS, falling back to DefaultTerminalWidth.
func TerminalWidth(ctx context.Context) int {
	return envutil.Int[int](ctx, "COLUMNS", envutil.Default(DefaultTerminalWidth)).
		ValueOrElse(DefaultTerminalWidth)
}

// bannersSuppressed is true when SORTBENCH_NO_BANNER is set, for plain
// output in scripts.
func bannersSuppressed(ctx context.Context) bool {
	return envutil.Bool(ctx, "SORTBENCH_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// Divider renders a horizontal rule width cells wide.
func Divider(width int) string {
	if width < borderWidth {
		return ""
	}

	return dividerLeft + strings.Repeat(dividerMiddle, width-borderWidth) + dividerRight + "\n"
}

// Banner draws a box around s. Lines longer than the box are cut with an
// ellipsis.
func Banner(ctx context.Context, s string, width int, alignment Alignment) string {
	if bannersSuppressed(ctx) {
		return s + "\n"
	}

	if width <= borderWidth || s == "" {
		return ""
	}

	inner := width - borderWidth

	var sb strings.Builder

	sb.WriteString(boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight + "\n")

	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		sb.WriteString(boxSide + pad(line, inner, alignment) + boxSide + "\n")
	}

	sb.WriteString(boxBottomLeft + strings.Repeat(boxBottom, inner) + boxBottomRight + "\n")

	return sb.String()
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

// truncateGraphic keeps the first n graphic runes of s.
func truncateGraphic(s string, n int) string {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func pad(text string, width int, alignment Alignment) string {
	length := countGraphic(text)

	if length > width {
		text = truncateGraphic(text, width-1) + ellipsis
		length = width
	}

	diff := width - length

	switch alignment {
	case AlignCenter:
		left := diff / 2

		return strings.Repeat(" ", left) + text + strings.Repeat(" ", diff-left)
	case AlignRight:
		return strings.Repeat(" ", diff) + text
	default:
		return text + strings.Repeat(" ", diff)
	}
}
