package vm

// Framebuffer is the 64x32 monochrome display, indexed by row and column.
type Framebuffer [ScreenHeight][ScreenWidth]bool

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	*f = Framebuffer{}
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the screen edges.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f[wrap(y, ScreenHeight)][wrap(x, ScreenWidth)]
}

// Lit returns the number of set pixels.
func (f *Framebuffer) Lit() int {
	count := 0
	for _, row := range f {
		for _, set := range row {
			if set {
				count++
			}
		}
	}
	return count
}

// DrawSprite XORs the sprite rows onto the framebuffer with the origin at
// (x mod 64, y mod 32). Every row byte is 8 pixels wide, the most significant
// bit is the leftmost pixel. Pixels that cross a screen edge wrap around to
// the opposite edge. It returns whether any set pixel was turned off.
func (f *Framebuffer) DrawSprite(x, y byte, sprite []byte) bool {
	x0 := int(x) % ScreenWidth
	y0 := int(y) % ScreenHeight
	collision := false

	for row, line := range sprite {
		py := (y0 + row) % ScreenHeight
		for col := range 8 {
			if line&(0x80>>col) == 0 {
				continue
			}
			px := (x0 + col) % ScreenWidth
			if f[py][px] {
				collision = true
			}
			f[py][px] = !f[py][px]
		}
	}
	return collision
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
