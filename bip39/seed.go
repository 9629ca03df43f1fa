package bip39

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length in bytes of a derived seed.
const SeedSize = 64

const (
	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// Seed derives the 64-byte BIP39 seed from a mnemonic phrase and an
// optional passphrase with PBKDF2-HMAC-SHA512. Both inputs are NFKD
// normalized; the phrase is otherwise used as given, so callers should
// pass its canonical form. Seed does not validate the phrase.
//
// The caller owns the result and should Wipe it after use.
func Seed(mnemonic, passphrase string) []byte {
	password := []byte(mnemonic)
	npassword := norm.NFKD.Bytes(password)
	pass := []byte(passphrase)
	npass := norm.NFKD.Bytes(pass)
	salt := append([]byte(saltPrefix), npass...)
	defer func() {
		Wipe(password)
		Wipe(npassword)
		Wipe(pass)
		Wipe(npass)
		Wipe(salt)
	}()
	return pbkdf2.Key(npassword, salt, seedIterations, SeedSize, sha512.New)
}

// Seed derives the seed of the mnemonic rendered in lang.
func (m Mnemonic) Seed(lang Language, passphrase string) ([]byte, error) {
	phrase, err := m.Phrase(lang)
	if err != nil {
		return nil, err
	}
	return Seed(phrase, passphrase), nil
}
