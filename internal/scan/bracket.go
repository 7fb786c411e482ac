// Package scan provides byte-level scanning over source text, currently the
// grouping-character matcher used by range reconciliation.
package scan

import "fmt"

// UnbalancedError reports an opening grouping character with no counterpart
// before the end of the scanned text. Callers only scan from a known opening
// character, so this signals an internal consistency violation rather than a
// normal failure.
type UnbalancedError struct {
	Open  byte // opening grouping character
	Start int  // offset the scan started at
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("scan: no counterpart for %q opened at offset %d", e.Open, e.Start)
}

// FindCounterpart returns the offset of the closing grouping character that
// matches the opening character at start in text. Nesting of the same
// character class is respected: the depth counter increments on every further
// occurrence of the opening character and decrements on the closing one, and
// the scan ends where depth returns to zero.
func FindCounterpart(open byte, text string, start int) (int, error) {
	close := counterpart(open)
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &UnbalancedError{Open: open, Start: start}
}

// counterpart returns the closing character for an opening grouping character.
func counterpart(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	return 0
}
