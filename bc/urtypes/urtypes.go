// Package urtypes encodes and decodes the CBOR payloads of the
// mnemonic related UR types from [BCR-2020-006].
//
// [BCR-2020-006]: https://github.com/BlockchainCommons/Research/blob/master/papers/bcr-2020-006-urtypes.md
package urtypes

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"mnemonic.dev/bip39"
)

const (
	TypeBIP39 = "crypto-bip39"
	TypeSeed  = "crypto-seed"
	TypeBytes = "bytes"
)

// BIP39 is a crypto-bip39 value: a mnemonic as a list of words plus an
// optional language code.
type BIP39 struct {
	Words []string `cbor:"1,keyasint"`
	Lang  string   `cbor:"2,keyasint,omitempty"`
}

// Seed is a crypto-seed value. The payload holds the mnemonic entropy.
type Seed struct {
	Payload []byte `cbor:"1,keyasint"`
}

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
	dm, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// NewBIP39 converts m to its crypto-bip39 form in lang.
func NewBIP39(m bip39.Mnemonic, lang bip39.Language) (BIP39, error) {
	wl, err := bip39.WordlistFor(lang)
	if err != nil {
		return BIP39{}, err
	}
	words := make([]string, len(m))
	for i, w := range m {
		words[i] = wl.Word(w)
	}
	return BIP39{Words: words, Lang: lang.Code()}, nil
}

// Mnemonic parses the words. A missing language code means English.
func (b BIP39) Mnemonic() (bip39.Mnemonic, bip39.Language, error) {
	lang := bip39.English
	if b.Lang != "" {
		l, err := bip39.ParseLanguage(b.Lang)
		if err != nil {
			return nil, 0, fmt.Errorf("urtypes: %s: %w", TypeBIP39, err)
		}
		lang = l
	}
	wl, err := bip39.WordlistFor(lang)
	if err != nil {
		return nil, 0, err
	}
	m := make(bip39.Mnemonic, len(b.Words))
	for i, word := range b.Words {
		w, ok := wl.Index(word)
		if !ok {
			return nil, 0, &bip39.WordError{Word: word, Position: i + 1, Suggestions: wl.Suggest(word)}
		}
		m[i] = w
	}
	if bip39.EntropyLen(len(m)) == 0 {
		return nil, 0, &bip39.WordCountError{Count: len(m)}
	}
	if !m.Valid() {
		return nil, 0, bip39.ErrChecksumMismatch
	}
	return m, lang, nil
}

func (b BIP39) Encode() []byte {
	enc, err := encMode.Marshal(b)
	if err != nil {
		panic(err)
	}
	return enc
}

// NewSeed returns the crypto-seed carrying the entropy of m.
func NewSeed(m bip39.Mnemonic) (Seed, error) {
	ent, err := m.Entropy()
	if err != nil {
		return Seed{}, err
	}
	return Seed{Payload: ent}, nil
}

// Mnemonic encodes the payload entropy.
func (s Seed) Mnemonic() (bip39.Mnemonic, error) {
	return bip39.New(s.Payload)
}

func (s Seed) Encode() []byte {
	enc, err := encMode.Marshal(s)
	if err != nil {
		panic(err)
	}
	return enc
}

// Parse decodes the CBOR payload enc of a UR of type typ. It returns a
// BIP39, a Seed or a []byte.
func Parse(typ string, enc []byte) (any, error) {
	switch typ {
	case TypeBIP39:
		var b BIP39
		if err := decMode.Unmarshal(enc, &b); err != nil {
			return nil, fmt.Errorf("urtypes: %s: %w", typ, err)
		}
		if len(b.Words) == 0 {
			return nil, fmt.Errorf("urtypes: %s: no words", typ)
		}
		return b, nil
	case TypeSeed:
		var s Seed
		if err := decMode.Unmarshal(enc, &s); err != nil {
			return nil, fmt.Errorf("urtypes: %s: %w", typ, err)
		}
		if len(s.Payload) == 0 {
			return nil, fmt.Errorf("urtypes: %s: empty payload", typ)
		}
		return s, nil
	case TypeBytes:
		var content []byte
		if err := decMode.Unmarshal(enc, &content); err != nil {
			return nil, fmt.Errorf("urtypes: bytes decoding failed: %w", err)
		}
		return content, nil
	default:
		return nil, fmt.Errorf("urtypes: unknown type %q", typ)
	}
}

// ErrNoMnemonic is returned by ToMnemonic for values that carry no
// mnemonic.
var ErrNoMnemonic = errors.New("urtypes: value holds no mnemonic")

// ToMnemonic extracts the mnemonic of a value returned by Parse.
// Seed payloads are reported as English.
func ToMnemonic(v any) (bip39.Mnemonic, bip39.Language, error) {
	switch v := v.(type) {
	case BIP39:
		return v.Mnemonic()
	case Seed:
		m, err := v.Mnemonic()
		return m, bip39.English, err
	default:
		return nil, 0, ErrNoMnemonic
	}
}
