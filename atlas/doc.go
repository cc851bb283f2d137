// Package atlas provides an in-memory glyph atlas for package text.
//
// An Atlas hands out rectangles on fixed-size square pages using shelf
// packing. Pages are single-channel (R8Unorm) coverage textures; filling
// them with rasterized glyphs and uploading them to a GPU is left to the
// caller, which can find every region through Page and the regions
// returned by PlaceGlyph.
//
//	a, err := atlas.New(atlas.DefaultConfig())
//	font.DrawText(renderer, a, "Hello", glyphlayout.Pt(10, 10), text.DrawOptions{})
//	for _, p := range a.DirtyPages() {
//		upload(p)
//		p.MarkClean()
//	}
package atlas
