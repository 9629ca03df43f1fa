package bip39

import (
	"encoding/hex"
	"strings"
)

// ParseEntropyHex decodes entropy written as hex digits, ignoring
// surrounding white space. It reports a *HexError for malformed digits
// and an *EntropyLengthError for a length other than 32, 40, 48, 56 or
// 64 digits.
func ParseEntropyHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if !isHexDigit(r) {
			return nil, &HexError{Offset: i, Char: r}
		}
	}
	if len(s)%2 != 0 {
		return nil, &HexError{Offset: len(s), Odd: true}
	}
	if WordCount(len(s)/2) == 0 {
		return nil, &EntropyLengthError{Len: len(s) / 2}
	}
	return hex.DecodeString(s)
}

func isHexDigit(r rune) bool {
	switch {
	case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		return true
	}
	return false
}
