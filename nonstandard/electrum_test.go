package nonstandard

import "testing"

func TestElectrumSeed(t *testing.T) {
	phrase := "head orient raw shoulder size fancy front cycle lamp giant camera jacket"
	if !ElectrumSeed(phrase) {
		t.Fatal("failed to detect Electrum seed")
	}
}

func TestElectrum(t *testing.T) {
	tests := []struct {
		phrase string
		want   ElectrumType
	}{
		{"head orient raw shoulder size fancy front cycle lamp giant camera jacket", ElectrumSegwit},
		{"  Head   ORIENT raw shoulder size fancy front cycle lamp giant camera jacket\n", ElectrumSegwit},
		{"wild father tree among universe such mobile favorite target dynamic credit identify", ElectrumSegwit},
		{"abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", ElectrumNone},
	}
	for _, test := range tests {
		if got := Electrum(test.phrase); got != test.want {
			t.Errorf("Electrum(%q) = %s, want %s", test.phrase, got, test.want)
		}
	}
}
