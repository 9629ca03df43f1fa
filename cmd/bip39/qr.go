package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kortschak/qr"
)

// quietZone is the light border around a code, in modules.
const quietZone = 2

// writeQR renders content as a QR code of half-height block
// characters, two module rows per line. Light modules are drawn, which
// suits the dark background of most terminals.
func writeQR(w io.Writer, content []byte) error {
	code, err := qr.Encode(string(content), qr.M)
	if err != nil {
		return fmt.Errorf("qr: %w", err)
	}
	bw := bufio.NewWriter(w)
	light := func(x, y int) bool { return !code.Black(x, y) }
	for y := -quietZone; y < code.Size+quietZone; y += 2 {
		for x := -quietZone; x < code.Size+quietZone; x++ {
			top, bottom := light(x, y), light(x, y+1)
			if y+1 >= code.Size+quietZone {
				bottom = false
			}
			switch {
			case top && bottom:
				bw.WriteString("█")
			case top:
				bw.WriteString("▀")
			case bottom:
				bw.WriteString("▄")
			default:
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
