package filter

// Blend combines two channel values with a normalised multiply,
// a/255 * b/255 * 255, truncated toward zero.
func Blend(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 0xFF)
}

// blendMax multiplies each channel of c by the matching channel of m and
// returns the largest product.
func blendMax(c, m Pixel) uint8 {
	v := Blend(c[0], m[0])
	if g := Blend(c[1], m[1]); g > v {
		v = g
	}
	if b := Blend(c[2], m[2]); b > v {
		v = b
	}
	return v
}
