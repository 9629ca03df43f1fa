// package nonstandard recognizes seed phrases of wallets that don't
// follow bip39.
package nonstandard

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ElectrumType is the kind of wallet an Electrum seed encodes.
type ElectrumType int

const (
	ElectrumNone ElectrumType = iota
	ElectrumStandard
	ElectrumSegwit
	Electrum2FA
	Electrum2FASegwit
)

func (t ElectrumType) String() string {
	switch t {
	case ElectrumStandard:
		return "standard"
	case ElectrumSegwit:
		return "segwit"
	case Electrum2FA:
		return "2fa"
	case Electrum2FASegwit:
		return "2fa-segwit"
	}
	return "none"
}

// Version number prefixes, from
// https://electrum.readthedocs.io/en/latest/seedphrase.html#version-number
var electrumPrefixes = []struct {
	prefix string
	typ    ElectrumType
}{
	{"01", ElectrumStandard},
	{"100", ElectrumSegwit},
	{"101", Electrum2FA},
	{"102", Electrum2FASegwit},
}

// ElectrumSeed reports whether the seed phrase is a valid Electrum
// seed.
func ElectrumSeed(phrase string) bool {
	return Electrum(phrase) != ElectrumNone
}

// Electrum returns the version of an Electrum seed phrase, or
// ElectrumNone.
func Electrum(phrase string) ElectrumType {
	mac := hmac.New(sha512.New, []byte("Seed version"))
	mac.Write([]byte(normalizeElectrum(phrase)))
	hsum := hex.EncodeToString(mac.Sum(nil))
	for _, p := range electrumPrefixes {
		if strings.HasPrefix(hsum, p.prefix) {
			return p.typ
		}
	}
	return ElectrumNone
}

// normalizeElectrum lowercases the phrase, strips accents and
// collapses white space like Electrum does before hashing.
func normalizeElectrum(phrase string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(t, strings.ToLower(phrase))
	if err != nil {
		s = phrase
	}
	return strings.Join(strings.Fields(s), " ")
}
