package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// withPhysDPI inserts a pHYs chunk after IHDR so viewers and print tools pick up the
// intended resolution. An existing pHYs chunk is left alone.
func withPhysDPI(data []byte, dpi float64) ([]byte, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, errors.New("not a PNG stream")
	}
	// signature + IHDR (len 4, type 4, data 13, crc 4)
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return nil, errors.New("PNG stream missing IHDR")
	}
	if _, ok := PhysDPI(data); ok {
		return data, nil
	}

	ppm := uint32(math.Round(dpi / 0.0254))
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out, nil
}

// PhysDPI reports the horizontal DPI declared by a PNG's pHYs chunk, if any.
func PhysDPI(data []byte) (float64, bool) {
	if !bytes.HasPrefix(data, pngSignature) {
		return 0, false
	}
	for off := len(pngSignature); off+8 <= len(data); {
		n := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		body := off + 8
		if n < 0 || body+n+4 > len(data) {
			return 0, false
		}
		switch typ {
		case "pHYs":
			if n != 9 || data[body+8] != 1 {
				return 0, false
			}
			return float64(binary.BigEndian.Uint32(data[body:body+4])) * 0.0254, true
		case "IDAT", "IEND":
			return 0, false
		}
		off = body + n + 4
	}
	return 0, false
}
