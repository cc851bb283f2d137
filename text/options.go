package text

// SystemOption configures a FontSystem.
type SystemOption func(*systemConfig)

// systemConfig holds configuration for FontSystem.
type systemConfig struct {
	kerning      bool
	shaper       Shaper
	defaultRune  rune
	hasDefault   bool
	shapedCacheN int
}

// defaultSystemConfig returns the default font system configuration.
func defaultSystemConfig() systemConfig {
	return systemConfig{
		kerning:      true,
		shapedCacheN: DefaultShapedTextCacheSize,
	}
}

// WithKerning enables or disables pairwise kerning on the simple layout path.
// Kerning is enabled by default.
func WithKerning(enabled bool) SystemOption {
	return func(c *systemConfig) {
		c.kerning = enabled
	}
}

// WithShaper installs a text shaper and switches layout to the shaped path.
// A nil shaper keeps the simple path.
func WithShaper(s Shaper) SystemOption {
	return func(c *systemConfig) {
		c.shaper = s
	}
}

// WithDefaultRune sets the codepoint substituted for codepoints that no
// font source contains, typically '?' or U+FFFD.
func WithDefaultRune(r rune) SystemOption {
	return func(c *systemConfig) {
		c.defaultRune = r
		c.hasDefault = true
	}
}

// WithShapedTextCacheSize sets how many shaped lines each Font keeps.
// Values <= 0 select DefaultShapedTextCacheSize.
func WithShapedTextCacheSize(n int) SystemOption {
	return func(c *systemConfig) {
		c.shapedCacheN = n
	}
}
