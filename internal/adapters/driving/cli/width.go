package cli

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// unlimitedWidth stands in for "no wrapping" when --columns 0 is given.
const unlimitedWidth = 999

// minColumns is the smallest usable override; smaller numeric values
// are silently ignored.
const minColumns = 10

// terminalWidth returns the detected terminal width capped at
// maxWidth, falling back to maxWidth when detection fails.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || w > maxWidth {
		return maxWidth
	}
	return w
}

// applyColumns folds a --columns override into width. A non-numeric
// value appends a warning and keeps the width unchanged; 0 disables
// wrapping; values of minColumns or less are ignored.
func applyColumns(flagColumns string, width int, warnings []string) (int, []string) {
	if flagColumns == "" {
		return width, warnings
	}

	n, err := strconv.Atoi(flagColumns)
	if err != nil {
		return width, append(warnings, "Invalid number of columns.")
	}
	switch {
	case n == 0:
		return unlimitedWidth, warnings
	case n > minColumns:
		return n, warnings
	default:
		return width, warnings
	}
}
