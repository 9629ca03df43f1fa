// package bip32 contains helper functions for operating on bitcoin bip32
// extended keys.
package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// MasterFingerprint returns the fingerprint of the master key derived
// from a bip39 seed: the first four bytes of HASH160 of its compressed
// public key.
func MasterFingerprint(seed []byte) (uint32, error) {
	mk, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return 0, err
	}
	defer mk.Zero()
	return Fingerprint(mk)
}

// Fingerprint returns the fingerprint of key.
func Fingerprint(key *hdkeychain.ExtendedKey) (uint32, error) {
	pub, err := key.ECPubKey()
	if err != nil {
		return 0, err
	}
	id := btcutil.Hash160(pub.SerializeCompressed())
	return binary.BigEndian.Uint32(id[:4]), nil
}
