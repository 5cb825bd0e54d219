package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ShareBar renders a bar like [████░░░░]  45% for the share of the day a
// process took.
func ShareBar(share float64, width int) string {
	share = min(max(share, 0), 1)
	width = max(width, 2)

	filled := min(int(share*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", StyleBlue.Render(bar), share*100)
}
