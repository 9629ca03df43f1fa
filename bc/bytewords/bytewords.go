// Package bytewords implements the minimal form of the bytewords
// encoding described in [BCR-2020-012], with its CRC32 suffix.
//
// [BCR-2020-012]: https://github.com/BlockchainCommons/Research/blob/master/papers/bcr-2020-012-bytewords.md
package bytewords

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

var (
	ErrTruncated = errors.New("bytewords: truncated input")
	ErrWord      = errors.New("bytewords: invalid word")
	ErrChecksum  = errors.New("bytewords: crc32 checksum mismatch")
)

const checksumLen = 4

// Encode returns the minimal bytewords encoding of data followed by
// its CRC32 checksum.
func Encode(data []byte) string {
	var check [checksumLen]byte
	binary.BigEndian.PutUint32(check[:], crc32.ChecksumIEEE(data))
	buf := make([]byte, 0, (len(data)+checksumLen)*2)
	buf = appendWords(buf, data)
	buf = appendWords(buf, check[:])
	return string(buf)
}

func appendWords(buf, data []byte) []byte {
	for _, b := range data {
		i := int(b) * 2
		buf = append(buf, abbrev[i:i+2]...)
	}
	return buf
}

// Decode reverses Encode and verifies the checksum. Input must be
// lower case.
func Decode(src string) ([]byte, error) {
	if len(src)%2 == 1 {
		return nil, ErrTruncated
	}
	dst := make([]byte, len(src)/2)
	if len(dst) < checksumLen {
		return nil, ErrTruncated
	}
	for i := range dst {
		w, ok := lookup(src[i*2], src[i*2+1])
		if !ok {
			return nil, ErrWord
		}
		dst[i] = w
	}
	data, check := dst[:len(dst)-checksumLen], dst[len(dst)-checksumLen:]
	if binary.BigEndian.Uint32(check) != crc32.ChecksumIEEE(data) {
		return nil, ErrChecksum
	}
	return data, nil
}

// lookup finds the byte whose word starts with l1 and ends with l2.
func lookup(l1, l2 byte) (byte, bool) {
	if l1 < 'a' || l1 > 'z' {
		return 0, false
	}
	for i := int(firstLetters[l1-'a']); i < len(abbrev)/2; i++ {
		if abbrev[i*2] != l1 {
			break
		}
		if abbrev[i*2+1] == l2 {
			return byte(i), true
		}
	}
	return 0, false
}

var firstLetters [26]uint8

func init() {
	var letter byte
	for i := 0; i < len(abbrev)/2; i++ {
		if l1 := abbrev[i*2]; l1 != letter {
			letter = l1
			firstLetters[letter-'a'] = uint8(i)
		}
	}
}

// abbrev contains the two-letter abbreviations for the bytewords word list:
// able, acid, also, apex, aqua, arch, atom, aunt,
// away, axis, back, bald, barn, belt, beta, bias,
// blue, body, brag, brew, bulb, buzz, calm, cash,
// cats, chef, city, claw, code, cola, cook, cost,
// crux, curl, cusp, cyan, dark, data, days, deli,
// dice, diet, door, down, draw, drop, drum, dull,
// duty, each, easy, echo, edge, epic, even, exam,
// exit, eyes, fact, fair, fern, figs, film, fish,
// fizz, flap, flew, flux, foxy, free, frog, fuel,
// fund, gala, game, gear, gems, gift, girl, glow,
// good, gray, grim, guru, gush, gyro, half, hang,
// hard, hawk, heat, help, high, hill, holy, hope,
// horn, huts, iced, idea, idle, inch, inky, into,
// iris, iron, item, jade, jazz, join, jolt, jowl,
// judo, jugs, jump, junk, jury, keep, keno, kept,
// keys, kick, kiln, king, kite, kiwi, knob, lamb,
// lava, lazy, leaf, legs, liar, limp, lion, list,
// logo, loud, love, luau, luck, lung, main, many,
// math, maze, memo, menu, meow, mild, mint, miss,
// monk, nail, navy, need, news, next, noon, note,
// numb, obey, oboe, omit, onyx, open, oval, owls,
// paid, part, peck, play, plus, poem, pool, pose,
// puff, puma, purr, quad, quiz, race, ramp, real,
// redo, rich, road, rock, roof, ruby, ruin, runs,
// rust, safe, saga, scar, sets, silk, skew, slot,
// soap, solo, song, stub, surf, swan, taco, task,
// taxi, tent, tied, time, tiny, toil, tomb, toys,
// trip, tuna, twin, ugly, undo, unit, urge, user,
// vast, very, veto, vial, vibe, view, visa, void,
// vows, wall, wand, warm, wasp, wave, waxy, webs,
// what, when, whiz, wolf, work, yank, yawn, yell,
// yoga, yurt, zaps, zero, zest, zinc, zone, zoom.
const abbrev = "aeadaoaxaaahamatayasbkbdbnbtbabsbebybgbwbbbzcmchcscfcycwcecackctcxclcpcndkdadsdidedtdrdndwdpdmdldyeheyeoeeecenemetesftfrfnfsfmfhfzfpfwfxfyfefgflfdgagegrgsgtglgwgdgygmgughgohfhghdhkhthphhhlhyhehnhsidiaieihiyioisinimjejzjnjtjljojsjpjkjykpkoktkskkknkgkekikblblalylflslrlplnltloldlelulklgmnmymhmemomumwmdmtmsmknlnyndnsntnnnenboyoeotoxonolospdptpkpypspmplpepfpaprqdqzrerprlrorhrdrkrfryrnrsrtsesasrssskswstspsosgsbsfsntotktitttdtetytltbtstptatnuyuoutueurvtvyvovlvevwvavdvswlwdwmwpwewywswtwnwzwfwkykynylyaytzszoztzczezm"
