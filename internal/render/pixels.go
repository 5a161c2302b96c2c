package render

import "image/color"

// fillSpinRGBA expands binary spin cells (1 = up) into RGBA pixels in buf.
func fillSpinRGBA(buf []byte, cells []uint8, up, down color.Color) {
	var px [2][4]byte
	for i, c := range []color.Color{down, up} {
		r, g, b, a := c.RGBA()
		px[i] = [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
	for i, cell := range cells {
		v := px[0]
		if cell != 0 {
			v = px[1]
		}
		copy(buf[i*4:i*4+4], v[:])
	}
}
