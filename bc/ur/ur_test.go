package ur

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"mnemonic.dev/bc/bytewords"
)

const seedUR = "ur:crypto-seed/oyadgdiywlamaejszswdwytltifeenftlnmnwkbdhnssro"

func TestDecode(t *testing.T) {
	want, err := hex.DecodeString("a1015066e9060071faeaeed5d045363a868ef4")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{seedUR, "UR:CRYPTO-SEED/OYADGDIYWLAMAEJSZSWDWYTLTIFEENFTLNMNWKBDHNSSRO", " " + seedUR + "\n"} {
		typ, msg, err := Decode(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if typ != "crypto-seed" {
			t.Errorf("%s: decoded type %q", s, typ)
		}
		if !bytes.Equal(msg, want) {
			t.Errorf("%s: decoded to %x, want %x", s, msg, want)
		}
	}
}

func TestEncode(t *testing.T) {
	msg, err := hex.DecodeString("a1015066e9060071faeaeed5d045363a868ef4")
	if err != nil {
		t.Fatal(err)
	}
	if got := Encode("crypto-seed", msg); got != seedUR {
		t.Errorf("encoded to %s, want %s", got, seedUR)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		ur  string
		err error
	}{
		{"crypto-seed/oyadgdiywlamaejszswdwytltifeenftlnmnwkbdhnssro", ErrPrefix},
		{"ur:crypto-seed/1-2/oyadgdiywlamaejszswdwytltifeenftlnmnwkbdhnssro", ErrMultipart},
		{"ur:crypto-seed/oyadgdiywlamaejszswdwytltifeenftlnmnwkbdhnssrs", bytewords.ErrChecksum},
		{"ur:crypto-seed", nil},
		{"ur:crypto_seed/oyadgdiywlamaejszswdwytltifeenftlnmnwkbdhnssro", nil},
	}
	for _, test := range tests {
		_, _, err := Decode(test.ur)
		if err == nil {
			t.Errorf("%s: decoded without error", test.ur)
			continue
		}
		if test.err != nil && !errors.Is(err, test.err) {
			t.Errorf("%s: got %v, want %v", test.ur, err, test.err)
		}
	}
}
