package text

import (
	"errors"
	"strconv"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilSource is returned when a nil FontSource is added to a FontSystem.
	ErrNilSource = errors.New("text: font source is nil")

	// ErrNoSources is returned when a font is requested from an empty FontSystem.
	ErrNoSources = errors.New("text: font system has no font sources")

	// ErrTooManySources is returned when a FontSystem already holds MaxSources sources.
	ErrTooManySources = errors.New("text: too many font sources")

	// ErrInvalidSize is returned for non-positive or NaN font sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrNilRenderer is returned when a draw call is given no renderer.
	ErrNilRenderer = errors.New("text: renderer is nil")

	// ErrNilAtlas is returned when a draw call is given no atlas.
	ErrNilAtlas = errors.New("text: atlas is nil")

	// ErrNoShapingContext is returned when text resolves to a font source
	// the shaper was never prepared for.
	ErrNoShapingContext = errors.New("text: no shaping context for font source")
)

// ShapingContextError is returned by a Shaper asked to shape a run against
// a font source it has no shaping context for. It unwraps to ErrNoShapingContext.
type ShapingContextError struct {
	Source SourceIndex
}

func (e *ShapingContextError) Error() string {
	return "text: no shaping context for font source " + strconv.Itoa(int(e.Source))
}

func (e *ShapingContextError) Unwrap() error {
	return ErrNoShapingContext
}
