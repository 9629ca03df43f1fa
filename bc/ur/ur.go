// Package ur implements single-part Uniform Resources (UR) as
// specified in [BCR-2020-005].
//
// [BCR-2020-005]: https://github.com/BlockchainCommons/Research/blob/master/papers/bcr-2020-005-ur.md
package ur

import (
	"errors"
	"fmt"
	"strings"

	"mnemonic.dev/bc/bytewords"
)

const prefix = "ur:"

var (
	ErrPrefix    = errors.New("ur: missing ur: prefix")
	ErrMultipart = errors.New("ur: multi-part resources are not supported")
)

// Encode returns the single-part UR of message tagged with typ.
func Encode(typ string, message []byte) string {
	return fmt.Sprintf("%s%s/%s", prefix, typ, bytewords.Encode(message))
}

// Decode splits a single-part UR into its type and message. UR text
// is case insensitive, because QR codes favour upper case.
func Decode(s string) (typ string, message []byte, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", nil, ErrPrefix
	}
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) > 2:
		return "", nil, ErrMultipart
	case len(parts) < 2 || !validType(parts[0]):
		return "", nil, fmt.Errorf("ur: invalid resource %q", s)
	}
	typ = parts[0]
	message, err = bytewords.Decode(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("ur: %s: %w", typ, err)
	}
	return typ, message, nil
}

// validType reports whether typ consists of lower case letters, digits
// and dashes.
func validType(typ string) bool {
	if typ == "" {
		return false
	}
	for _, c := range typ {
		switch {
		case 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}
