package urtypes

import (
	"encoding/hex"
	"errors"
	"reflect"
	"slices"
	"testing"

	"mnemonic.dev/bip39"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		_type string
		enc   string
		want  any
	}{
		{
			TypeSeed,
			"a1015066e9060071faeaeed5d045363a868ef4",
			Seed{Payload: []byte{102, 233, 6, 0, 113, 250, 234, 238, 213, 208, 69, 54, 58, 134, 142, 244}},
		},
		{
			TypeBytes,
			"4401020304",
			[]byte{1, 2, 3, 4},
		},
	}
	for _, test := range tests {
		enc, err := hex.DecodeString(test.enc)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Parse(test._type, enc)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s decoded to\n%#v\nwanted\n%#v", test.enc, got, test.want)
		}
	}
}

func TestSeedEncode(t *testing.T) {
	s := Seed{Payload: []byte{102, 233, 6, 0, 113, 250, 234, 238, 213, 208, 69, 54, 58, 134, 142, 244}}
	const want = "a1015066e9060071faeaeed5d045363a868ef4"
	if got := hex.EncodeToString(s.Encode()); got != want {
		t.Errorf("encoded to %s, want %s", got, want)
	}
}

func TestBIP39(t *testing.T) {
	m, err := bip39.New(make([]byte, 16))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBIP39(m, bip39.English)
	if err != nil {
		t.Fatal(err)
	}
	if b.Lang != "en" || len(b.Words) != 12 || b.Words[11] != "about" {
		t.Errorf("unexpected crypto-bip39 %+v", b)
	}
	v, err := Parse(TypeBIP39, b.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v, b) {
		t.Errorf("decoded %+v, want %+v", v, b)
	}
	got, lang, err := ToMnemonic(v)
	if err != nil {
		t.Fatal(err)
	}
	if lang != bip39.English || !slices.Equal(got, m) {
		t.Errorf("roundtripped to %v (%s), want %v", got, lang, m)
	}
}

func TestBIP39Languages(t *testing.T) {
	m, err := bip39.New([]byte{0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f})
	if err != nil {
		t.Fatal(err)
	}
	for _, lang := range []bip39.Language{bip39.Japanese, bip39.Spanish, bip39.TraditionalChinese} {
		b, err := NewBIP39(m, lang)
		if err != nil {
			t.Fatal(err)
		}
		v, err := Parse(TypeBIP39, b.Encode())
		if err != nil {
			t.Fatal(err)
		}
		got, gotLang, err := ToMnemonic(v)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if gotLang != lang || !slices.Equal(got, m) {
			t.Errorf("%s: roundtripped to %v (%s)", lang, got, gotLang)
		}
	}
}

func TestBIP39Invalid(t *testing.T) {
	b := BIP39{Words: []string{"abandon", "abandon", "abandon", "abandon", "abandon", "abandon",
		"abandon", "abandon", "abandon", "abandon", "abandon", "abandon"}}
	if _, _, err := b.Mnemonic(); !errors.Is(err, bip39.ErrChecksumMismatch) {
		t.Errorf("got %v, want %v", err, bip39.ErrChecksumMismatch)
	}
	b.Words[3] = "abandonn"
	if _, _, err := b.Mnemonic(); !errors.Is(err, bip39.ErrInvalidWord) {
		t.Errorf("got %v, want %v", err, bip39.ErrInvalidWord)
	}
	b.Lang = "klingon"
	if _, _, err := b.Mnemonic(); !errors.Is(err, bip39.ErrUnsupportedLanguage) {
		t.Errorf("got %v, want %v", err, bip39.ErrUnsupportedLanguage)
	}
	if _, err := Parse(TypeBIP39, []byte{0xa0}); err == nil {
		t.Error("parsed an empty crypto-bip39")
	}
	if _, err := Parse("crypto-output", []byte{0xa0}); err == nil {
		t.Error("parsed an unknown type")
	}
	if _, _, err := ToMnemonic([]byte{1}); !errors.Is(err, ErrNoMnemonic) {
		t.Errorf("got %v, want %v", err, ErrNoMnemonic)
	}
}

func TestSeed(t *testing.T) {
	ent, err := hex.DecodeString("66e9060071faeaeed5d045363a868ef4")
	if err != nil {
		t.Fatal(err)
	}
	m, err := bip39.New(ent)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSeed(m)
	if err != nil {
		t.Fatal(err)
	}
	v, err := Parse(TypeSeed, s.Encode())
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := ToMnemonic(v)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, m) {
		t.Errorf("roundtripped to %v, want %v", got, m)
	}
}
