// Package seedqr encodes and decodes [SeedQR] and CompactSeedQR formats.
//
// [SeedQR]: https://github.com/SeedSigner/seedsigner/blob/dev/docs/seed_qr/README.md
package seedqr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"mnemonic.dev/bip39"
)

var ErrInvalid = errors.New("seedqr: invalid code")

// Parse decodes a SeedQR or CompactSeedQR payload as read from a
// scanned code, where the QR mode tells the two apart.
func Parse(qr []byte) (bip39.Mnemonic, error) {
	if m, ok := parseSeedQR(string(qr)); ok {
		return m, nil
	}
	return ParseCompact(qr)
}

// ParseStandard decodes the digits of a standard SeedQR. Unlike Parse
// it never reinterprets the text as CompactSeedQR bytes.
func ParseStandard(digits string) (bip39.Mnemonic, error) {
	m, ok := parseSeedQR(digits)
	if !ok {
		return nil, ErrInvalid
	}
	return m, nil
}

// QR encodes a bip39 menmonic into the SeedQR format: the decimal word
// indices, four digits each.
func QR(m bip39.Mnemonic) ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("seedqr: %w", bip39.ErrChecksumMismatch)
	}
	var qr bytes.Buffer
	for _, w := range m {
		fmt.Fprintf(&qr, "%04d", w)
	}
	return qr.Bytes(), nil
}

// CompactQR encodes a bip39 mnemonic into the CompactSeedQR format,
// which is the raw entropy of 12 and 24 word mnemonics.
func CompactQR(m bip39.Mnemonic) ([]byte, error) {
	switch len(m) {
	case 12, 24:
	default:
		return nil, fmt.Errorf("seedqr: compact format needs 12 or 24 words, got %d", len(m))
	}
	ent, err := m.Entropy()
	if err != nil {
		return nil, fmt.Errorf("seedqr: %w", err)
	}
	return ent, nil
}

func parseSeedQR(qr string) (bip39.Mnemonic, bool) {
	if len(qr)%4 != 0 || bip39.EntropyLen(len(qr)/4) == 0 {
		return nil, false
	}
	m := make(bip39.Mnemonic, len(qr)/4)
	for i := range m {
		word, err := strconv.ParseUint(qr[i*4:(i+1)*4], 10, 16)
		if err != nil {
			return nil, false
		}
		m[i] = bip39.Word(word)
	}
	if !m.Valid() {
		return nil, false
	}
	return m, true
}

// ParseCompact decodes the raw entropy of a CompactSeedQR.
func ParseCompact(qr []byte) (bip39.Mnemonic, error) {
	switch len(qr) {
	case 128 / 8, 256 / 8:
	default:
		return nil, ErrInvalid
	}
	return bip39.New(qr)
}
