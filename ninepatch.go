package imagebox

// Patch pairs a source region of an image with the destination it is
// stretched into.
type Patch struct {
	Src, Dst Rect
}

// NinePatch splits an image of imageSize into up to nine patches around
// center and maps them onto dst.
//
// Corners keep their size, the top and bottom strips stretch horizontally,
// the left and right strips vertically and the centre on both axes. When dst
// is too small for the fixed borders on an axis, the borders shrink in
// proportion and the centre collapses on that axis. Patches with an empty
// source or destination are omitted.
func NinePatch(imageSize Size, center, dst Rect) []Patch {
	center = center.Intersect(RectFromOffsetSize(Offset{}, imageSize))
	if center.IsEmpty() {
		Logger().Warn("imagebox: nine-patch center outside image", "center", center, "image", imageSize)
		return []Patch{{Src: RectFromOffsetSize(Offset{}, imageSize), Dst: dst}}
	}

	sx := [4]float64{0, center.Left, center.Right, imageSize.Width}
	sy := [4]float64{0, center.Top, center.Bottom, imageSize.Height}
	dx := latticeDivs(dst.Left, dst.Right, center.Left, imageSize.Width-center.Right)
	dy := latticeDivs(dst.Top, dst.Bottom, center.Top, imageSize.Height-center.Bottom)

	patches := make([]Patch, 0, 9)
	for j := range 3 {
		for i := range 3 {
			p := Patch{
				Src: RectFromLTRB(sx[i], sy[j], sx[i+1], sy[j+1]),
				Dst: RectFromLTRB(dx[i], dy[j], dx[i+1], dy[j+1]),
			}
			if p.Src.IsEmpty() || p.Dst.IsEmpty() {
				continue
			}
			patches = append(patches, p)
		}
	}
	return patches
}

// latticeDivs returns the four destination edges along one axis for fixed
// leading and trailing borders.
func latticeDivs(start, end, lead, trail float64) [4]float64 {
	extent := end - start
	fixed := lead + trail
	if fixed > extent && fixed > 0 {
		s := extent / fixed
		mid := start + lead*s
		return [4]float64{start, mid, mid, end}
	}
	return [4]float64{start, start + lead, end - trail, end}
}
