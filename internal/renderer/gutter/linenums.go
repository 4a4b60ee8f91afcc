package gutter

import "strconv"

// FormatNumber formats a line number for display.
func FormatNumber(n int) string {
	return strconv.Itoa(n)
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}

// CalculateWidth calculates the minimum width needed to display line numbers
// for the given line count.
func CalculateWidth(lineCount int, minWidth int) int {
	digits := countDigits(lineCount)
	if digits < minWidth {
		return minWidth
	}
	return digits
}

// countDigits returns the number of decimal digits in n (at least 1).
func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

// FormatPosition formats a 0-based position as "line:col" (1-based).
func FormatPosition(line, col int) string {
	return FormatNumber(line+1) + ":" + FormatNumber(col+1)
}
