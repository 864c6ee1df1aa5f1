// Package blend implements Porter-Duff compositing operators and separable
// blend modes on premultiplied 8-bit colour.
//
// All operations take and return premultiplied alpha values in the range
// 0-255. The source is the colour being composited, the destination is the
// colour already present.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode identifies a compositing operation.
type Mode uint8

const (
	ModeClear    Mode = iota // 0
	ModeSrc                  // S
	ModeDst                  // D
	ModeSrcOver              // S + D*(1-Sa)
	ModeDstOver              // S*(1-Da) + D
	ModeSrcIn                // S*Da
	ModeDstIn                // D*Sa
	ModeSrcOut               // S*(1-Da)
	ModeDstOut               // D*(1-Sa)
	ModeSrcATop              // S*Da + D*(1-Sa)
	ModeDstATop              // S*(1-Da) + D*Sa
	ModeXor                  // S*(1-Da) + D*(1-Sa)
	ModePlus                 // min(S+D, 1)
	ModeModulate             // S*D
	ModeMultiply             // separable, B = Cs*Cb
	ModeScreen               // separable, B = Cs + Cb - Cs*Cb
	ModeOverlay              // separable, HardLight with swapped layers
	ModeDarken               // separable, B = min(Cs, Cb)
	ModeLighten              // separable, B = max(Cs, Cb)
	ModeDifference           // separable, B = |Cs - Cb|
	ModeExclusion            // separable, B = Cs + Cb - 2*Cs*Cb

	modeCount
)

// Func composites one premultiplied source pixel onto one premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

var modeFuncs = [modeCount]Func{
	ModeClear:      clearFn,
	ModeSrc:        src,
	ModeDst:        dst,
	ModeSrcOver:    srcOver,
	ModeDstOver:    dstOver,
	ModeSrcIn:      srcIn,
	ModeDstIn:      dstIn,
	ModeSrcOut:     srcOut,
	ModeDstOut:     dstOut,
	ModeSrcATop:    srcATop,
	ModeDstATop:    dstATop,
	ModeXor:        xor,
	ModePlus:       plus,
	ModeModulate:   modulate,
	ModeMultiply:   multiply,
	ModeScreen:     screen,
	ModeOverlay:    overlay,
	ModeDarken:     darken,
	ModeLighten:    lighten,
	ModeDifference: difference,
	ModeExclusion:  exclusion,
}

var modeNames = [modeCount]string{
	ModeClear:      "clear",
	ModeSrc:        "src",
	ModeDst:        "dst",
	ModeSrcOver:    "srcOver",
	ModeDstOver:    "dstOver",
	ModeSrcIn:      "srcIn",
	ModeDstIn:      "dstIn",
	ModeSrcOut:     "srcOut",
	ModeDstOut:     "dstOut",
	ModeSrcATop:    "srcATop",
	ModeDstATop:    "dstATop",
	ModeXor:        "xor",
	ModePlus:       "plus",
	ModeModulate:   "modulate",
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeOverlay:    "overlay",
	ModeDarken:     "darken",
	ModeLighten:    "lighten",
	ModeDifference: "difference",
	ModeExclusion:  "exclusion",
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// String returns the lower-camel name of the mode.
func (m Mode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return modeNames[m]
}

// Func returns the compositing function for m.
// Unknown modes fall back to source-over.
func (m Mode) Func() Func {
	if !m.Valid() {
		return srcOver
	}
	return modeFuncs[m]
}

// Apply composites a single pixel with mode m.
func Apply(m Mode, sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	return m.Func()(sr, sg, sb, sa, dr, dg, db, da)
}

func clearFn(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func src(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func dst(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

func srcOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

func dstOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return srcOver(dr, dg, db, da, sr, sg, sb, sa)
}

func srcIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func dstIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func srcOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

func dstOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

func srcATop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

func dstATop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return srcATop(dr, dg, db, da, sr, sg, sb, sa)
}

func xor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

func plus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

func modulate(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, dr), mulDiv255(sg, dg), mulDiv255(sb, db), mulDiv255(sa, da)
}

// mulDiv255 computes a*b/255 rounded to nearest.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two channel values, saturating at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
