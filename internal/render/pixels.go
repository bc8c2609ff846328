package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry; an empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillSparkRGBA draws values as a column chart into a w*h RGBA buffer, one
// column per value scaled between lo and hi. The newest value is right-most.
func fillSparkRGBA(buf []byte, w, h int, values []int, lo, hi int, fg, bg color.RGBA) {
	for i := 0; i < w*h; i++ {
		put(buf, i, bg)
	}
	if len(values) == 0 || w == 0 || h == 0 {
		return
	}
	if len(values) > w {
		values = values[len(values)-w:]
	}
	offset := w - len(values)
	span := hi - lo
	for i, v := range values {
		height := h
		if span > 0 {
			height = 1 + (v-lo)*(h-1)/span
		}
		x := offset + i
		for y := h - height; y < h; y++ {
			put(buf, y*w+x, fg)
		}
	}
}

func put(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
