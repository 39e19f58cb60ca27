package core

// Framebuffer is a rectangular RGB pixel surface. It decouples game rendering
// from the display, allowing the renderer to draw with simple set-pixel
// operations while the platform handles the actual blit.
//
// Pixels are stored in row-major order: index = y*width + x.
type Framebuffer struct {
	width  int
	height int
	pixels []Color
}

// NewFramebuffer creates a framebuffer with the given dimensions, cleared to
// black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the surface width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the surface height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// InBounds returns true if (x, y) lies on the surface.
func (f *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c Color) {
	if !f.InBounds(x, y) {
		return
	}
	f.pixels[y*f.width+x] = c
}

// At returns the pixel at (x, y). Out-of-bounds reads return black.
func (f *Framebuffer) At(x, y int) Color {
	if !f.InBounds(x, y) {
		return Color{}
	}
	return f.pixels[y*f.width+x]
}

// Fill floods the entire surface with one color.
func (f *Framebuffer) Fill(c Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// FillRect fills a rectangular area, clipped to the surface bounds.
func (f *Framebuffer) FillRect(r Rect, c Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			f.Set(x, y, c)
		}
	}
}

// Resize changes the surface dimensions, preserving content where possible.
func (f *Framebuffer) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}

	old := f.pixels
	oldW, oldH := f.width, f.height

	f.width = width
	f.height = height
	f.pixels = make([]Color, width*height)

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			f.pixels[y*width+x] = old[y*oldW+x]
		}
	}
}

// Clone returns a deep copy of the framebuffer.
func (f *Framebuffer) Clone() *Framebuffer {
	pixels := make([]Color, len(f.pixels))
	copy(pixels, f.pixels)
	return &Framebuffer{
		width:  f.width,
		height: f.height,
		pixels: pixels,
	}
}
