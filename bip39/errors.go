package bip39

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEntropyLength = errors.New("bip39: invalid entropy length")
	ErrInvalidWordCount     = errors.New("bip39: invalid word count")
	ErrInvalidWord          = errors.New("bip39: invalid word")
	ErrChecksumMismatch     = errors.New("bip39: checksum mismatch")
	ErrInvalidHex           = errors.New("bip39: invalid hex")
	ErrUnsupportedLanguage  = errors.New("bip39: unsupported language")
)

// EntropyLengthError reports entropy of a length other than 16, 20, 24,
// 28 or 32 bytes.
type EntropyLengthError struct {
	Len int
}

func (e *EntropyLengthError) Error() string {
	return fmt.Sprintf("bip39: invalid entropy length: %d bytes (want 16, 20, 24, 28 or 32)", e.Len)
}

func (e *EntropyLengthError) Unwrap() error { return ErrInvalidEntropyLength }

// WordCountError reports a phrase with a word count other than
// 12, 15, 18, 21 or 24.
type WordCountError struct {
	Count int
}

func (e *WordCountError) Error() string {
	return fmt.Sprintf("bip39: invalid word count: %d (want 12, 15, 18, 21 or 24)", e.Count)
}

func (e *WordCountError) Unwrap() error { return ErrInvalidWordCount }

// Closest returns the valid word count nearest to the rejected one,
// preferring the smaller count on ties.
func (e *WordCountError) Closest() int {
	best := wordCounts[0]
	for _, n := range wordCounts[1:] {
		if abs(n-e.Count) < abs(best-e.Count) {
			best = n
		}
	}
	return best
}

// WordError reports the leftmost word of a phrase that is not in the
// word list. Position is 1-based.
type WordError struct {
	Word        string
	Position    int
	Suggestions []string
}

func (e *WordError) Error() string {
	msg := fmt.Sprintf("bip39: invalid word %q at position %d", e.Word, e.Position)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

func (e *WordError) Unwrap() error { return ErrInvalidWord }

// HexError reports malformed hex input. Offset is the 0-based
// character position of the offending character, or the input length
// when the input has an odd number of digits.
type HexError struct {
	Offset int
	Char   rune
	Odd    bool
}

func (e *HexError) Error() string {
	if e.Odd {
		return fmt.Sprintf("bip39: invalid hex: odd number of digits (%d)", e.Offset)
	}
	return fmt.Sprintf("bip39: invalid hex: character %q at position %d", e.Char, e.Offset)
}

func (e *HexError) Unwrap() error { return ErrInvalidHex }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
