package atlas

import (
	"fmt"
	"sync"

	"github.com/gogpu/glyphlayout"
	"github.com/gogpu/glyphlayout/text"
	"github.com/gogpu/gputypes"
)

// Page is one atlas texture. It is the Texture handle of every region
// placed on it.
type Page struct {
	// Data holds one byte per pixel in Format, row-major.
	Data []byte

	// Size is width = height of the page.
	Size int

	Format gputypes.TextureFormat

	// mu is the owning atlas's lock; it guards the fields below.
	mu        *sync.Mutex
	index     int
	allocator *shelfAllocator
	glyphs    int
	dirty     bool
}

func newPage(mu *sync.Mutex, index int, config Config) *Page {
	return &Page{
		mu:        mu,
		Data:      make([]byte, config.PageSize*config.PageSize),
		Size:      config.PageSize,
		Format:    text.GlyphFormat,
		index:     index,
		allocator: newShelfAllocator(config.PageSize, config.Padding),
	}
}

// Index returns the page position within its atlas.
func (p *Page) Index() int { return p.index }

// GlyphCount returns the number of glyphs placed on the page.
func (p *Page) GlyphCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.glyphs
}

// Utilization returns the fraction of the page area in use.
func (p *Page) Utilization() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allocator.utilization()
}

// IsDirty reports whether regions were placed since the last MarkClean.
func (p *Page) IsDirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// MarkClean clears the dirty flag, typically after a GPU upload.
func (p *Page) MarkClean() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dirty = false
}

// Atlas is a multi-page shelf-packed glyph atlas implementing text.Atlas.
//
// Atlas is safe for concurrent use, so one atlas can back several fonts.
type Atlas struct {
	mu     sync.Mutex
	config Config
	pages  []*Page
	placed int
}

var _ text.Atlas = (*Atlas)(nil)

// New creates an empty atlas. Pages are allocated on demand.
func New(config Config) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{
		config: config,
		pages:  make([]*Page, 0, config.MaxPages),
	}, nil
}

// NewDefault creates an atlas with DefaultConfig.
func NewDefault() *Atlas {
	a, _ := New(DefaultConfig())
	return a
}

// PlaceGlyph implements text.Atlas. It reserves a region the size of the
// bitmap on the first page with room, opening a new page when needed.
func (a *Atlas) PlaceGlyph(b text.GlyphBitmap) (*text.AtlasRegion, error) {
	if b.Width < 0 || b.Height < 0 {
		return nil, ErrInvalidGlyphSize
	}
	if b.Format != text.GlyphFormat {
		return nil, fmt.Errorf("atlas: unsupported glyph format %v", b.Format)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, p := range a.pages {
		if region, ok := a.placeOn(p, b); ok {
			return region, nil
		}
	}

	if len(a.pages) > 0 && !a.pages[0].allocator.fits(b.Width, b.Height) {
		return nil, fmt.Errorf("%w: %dx%d on %d page", ErrGlyphTooLarge, b.Width, b.Height, a.config.PageSize)
	}
	if len(a.pages) >= a.config.MaxPages {
		return nil, ErrAtlasFull
	}

	p := newPage(&a.mu, len(a.pages), a.config)
	if !p.allocator.fits(b.Width, b.Height) {
		return nil, fmt.Errorf("%w: %dx%d on %d page", ErrGlyphTooLarge, b.Width, b.Height, a.config.PageSize)
	}
	a.pages = append(a.pages, p)
	glyphlayout.Logger().Debug("atlas: page added", "index", p.index, "size", p.Size)

	region, _ := a.placeOn(p, b)
	return region, nil
}

func (a *Atlas) placeOn(p *Page, b text.GlyphBitmap) (*text.AtlasRegion, bool) {
	x, y, ok := p.allocator.allocate(b.Width, b.Height)
	if !ok {
		return nil, false
	}
	p.glyphs++
	p.dirty = true
	a.placed++
	return &text.AtlasRegion{
		Texture: p,
		X:       x,
		Y:       y,
		Width:   b.Width,
		Height:  b.Height,
	}, true
}

// PageCount returns the number of allocated pages.
func (a *Atlas) PageCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pages)
}

// Page returns page i, or nil if out of range.
func (a *Atlas) Page(i int) *Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.pages) {
		return nil
	}
	return a.pages[i]
}

// DirtyPages returns the pages with regions placed since their last MarkClean.
func (a *Atlas) DirtyPages() []*Page {
	a.mu.Lock()
	defer a.mu.Unlock()
	var dirty []*Page
	for _, p := range a.pages {
		if p.dirty {
			dirty = append(dirty, p)
		}
	}
	return dirty
}

// GlyphCount returns the number of regions placed.
func (a *Atlas) GlyphCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.placed
}

// Reset forgets every region and releases all pages. Glyphs already
// holding regions keep stale placements, so the fonts that placed them
// must clear their caches too.
func (a *Atlas) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pages = a.pages[:0]
	a.placed = 0
}
