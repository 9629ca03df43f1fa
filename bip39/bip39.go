// Package bip39 converts between entropy, BIP39 mnemonic phrases in the
// ten standard languages and the 64-byte seeds derived from them.
package bip39

import (
	"crypto/sha256"
	"slices"
	"strings"
)

// Mnemonic is the language-neutral index form of a mnemonic phrase.
// The checksum occupies the low bits of the last word.
type Mnemonic []Word

var (
	entropyLens = []int{16, 20, 24, 28, 32}
	wordCounts  = []int{12, 15, 18, 21, 24}
)

// WordCount returns the number of words encoding entropyLen bytes, or
// zero for an invalid length.
func WordCount(entropyLen int) int {
	if !slices.Contains(entropyLens, entropyLen) {
		return 0
	}
	return (entropyLen*8 + entropyLen/4) / wordBits
}

// EntropyLen returns the entropy length in bytes of a mnemonic of n
// words, or zero for an invalid count.
func EntropyLen(n int) int {
	if !slices.Contains(wordCounts, n) {
		return 0
	}
	return (n*wordBits - n/3) / 8
}

// New returns the mnemonic encoding entropy.
func New(entropy []byte) (Mnemonic, error) {
	n := WordCount(len(entropy))
	if n == 0 {
		return nil, &EntropyLengthError{Len: len(entropy)}
	}
	check := checksum(entropy)
	entBits := len(entropy) * 8
	checkBits := len(entropy) / 4
	bit := func(i int) Word {
		if i < entBits {
			return Word(entropy[i/8]>>(7-i%8)) & 1
		}
		// Checksum bits are taken from the top of check.
		i -= entBits
		return Word(check>>(checkBits-1-i)) & 1
	}
	m := make(Mnemonic, n)
	for i := range m {
		var w Word
		for j := 0; j < wordBits; j++ {
			w = w<<1 | bit(i*wordBits+j)
		}
		m[i] = w
	}
	return m, nil
}

// Encode returns the canonical phrase encoding entropy in lang.
func Encode(entropy []byte, lang Language) (string, error) {
	m, err := New(entropy)
	if err != nil {
		return "", err
	}
	defer m.Wipe()
	return m.Phrase(lang)
}

// Parse converts a phrase in lang to its index form and verifies the
// checksum. The first word missing from the list is reported as a
// *WordError carrying up to three suggestions.
func Parse(phrase string, lang Language) (Mnemonic, error) {
	return parse(phrase, lang, (*Wordlist).Index)
}

// ParseAbbreviated is like Parse but also accepts words abbreviated to
// their first four or more code points.
func ParseAbbreviated(phrase string, lang Language) (Mnemonic, error) {
	return parse(phrase, lang, (*Wordlist).Expand)
}

func parse(phrase string, lang Language, lookup func(*Wordlist, string) (Word, bool)) (Mnemonic, error) {
	wl, err := WordlistFor(lang)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(phrase)
	if EntropyLen(len(fields)) == 0 {
		return nil, &WordCountError{Count: len(fields)}
	}
	m := make(Mnemonic, len(fields))
	for i, f := range fields {
		w, ok := lookup(wl, f)
		if !ok {
			m.Wipe()
			return nil, &WordError{
				Word:        f,
				Position:    i + 1,
				Suggestions: wl.Suggest(f),
			}
		}
		m[i] = w
	}
	if !m.Valid() {
		m.Wipe()
		return nil, ErrChecksumMismatch
	}
	return m, nil
}

// Decode returns the entropy encoded by a phrase in lang.
func Decode(phrase string, lang Language) ([]byte, error) {
	m, err := Parse(phrase, lang)
	if err != nil {
		return nil, err
	}
	defer m.Wipe()
	return m.Entropy()
}

// Validate reports whether phrase is a valid mnemonic in lang.
func Validate(phrase string, lang Language) error {
	m, err := Parse(phrase, lang)
	if err != nil {
		return err
	}
	m.Wipe()
	return nil
}

// Valid reports whether the mnemonic has a valid length, every index
// is in range and the checksum is correct.
func (m Mnemonic) Valid() bool {
	if EntropyLen(len(m)) == 0 {
		return false
	}
	for _, w := range m {
		if !w.valid() {
			return false
		}
	}
	ent, check := splitMnemonic(m)
	defer Wipe(ent)
	return checksum(ent) == check
}

// Entropy returns the entropy represented by the mnemonic.
func (m Mnemonic) Entropy() ([]byte, error) {
	if EntropyLen(len(m)) == 0 {
		return nil, &WordCountError{Count: len(m)}
	}
	if !m.Valid() {
		return nil, ErrChecksumMismatch
	}
	ent, _ := splitMnemonic(m)
	return ent, nil
}

// FixChecksum returns a copy of the mnemonic with a correct checksum.
// This method defeats the purpose of the bip39 checksum, so it should
// only be used for generating new mnemonics or decoding formats that
// omit the checksum.
func (m Mnemonic) FixChecksum() Mnemonic {
	m2 := slices.Clone(m)
	if EntropyLen(len(m2)) == 0 {
		return m2
	}
	ent, _ := splitMnemonic(m2)
	defer Wipe(ent)
	// The length was checked above.
	m2[len(m2)-1], _ = ChecksumWord(ent)
	return m2
}

// Phrase returns the canonical phrase of the mnemonic in lang.
func (m Mnemonic) Phrase(lang Language) (string, error) {
	wl, err := WordlistFor(lang)
	if err != nil {
		return "", err
	}
	s := new(strings.Builder)
	for i, w := range m {
		if i > 0 {
			s.WriteString(lang.Separator())
		}
		s.WriteString(wl.Word(w))
	}
	return s.String(), nil
}

// String returns the English phrase of the mnemonic.
func (m Mnemonic) String() string {
	s, _ := m.Phrase(English)
	return s
}

// Wipe zeroes the word indices.
func (m Mnemonic) Wipe() {
	clear(m)
}

// splitMnemonic unpacks the 11-bit groups of m into the entropy prefix
// and the checksum suffix. The length of m must be valid.
func splitMnemonic(m Mnemonic) (entropy []byte, check byte) {
	total := len(m) * wordBits
	checkBits := len(m) / 3
	entBits := total - checkBits
	entropy = make([]byte, entBits/8)
	for i := 0; i < total; i++ {
		b := byte(m[i/wordBits]>>(wordBits-1-i%wordBits)) & 1
		if i < entBits {
			entropy[i/8] |= b << (7 - i%8)
		} else {
			check = check<<1 | b
		}
	}
	return entropy, check
}

// checksum returns the top len(entropy)/4 bits of SHA-256(entropy),
// right aligned.
func checksum(entropy []byte) byte {
	h := sha256.Sum256(entropy)
	defer Wipe(h[:])
	checkBits := len(entropy) / 4
	if checkBits > 8 {
		panic("entropy too long")
	}
	return h[0] >> (8 - checkBits)
}

// ChecksumWord returns the last word of the mnemonic encoding entropy:
// the trailing entropy bits followed by the checksum.
func ChecksumWord(entropy []byte) (Word, error) {
	if WordCount(len(entropy)) == 0 {
		return 0, &EntropyLengthError{Len: len(entropy)}
	}
	checkBits := len(entropy) / 4
	last := entropy[len(entropy)-1]
	w := Word(last)<<checkBits | Word(checksum(entropy))
	return w % NumWords, nil
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
