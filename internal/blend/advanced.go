package blend

// separable composites with a per-channel blend function B(Cs, Cb) that
// operates on unpremultiplied channels:
//
//	co = cs*(1-ab) + cb*(1-as) + as*ab*B(Cs, Cb)
//	ao = as + ab*(1-as)
func separable(sr, sg, sb, sa, dr, dg, db, da byte, fn func(s, d int) int) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	channel := func(s, d byte) byte {
		bl := fn(unpremul(s, sa), unpremul(d, da))
		return addClamp(addClamp(mulDiv255(s, invDa), mulDiv255(d, invSa)), mulDiv255(saDa, clampByte(bl)))
	}
	return channel(sr, dr), channel(sg, dg), channel(sb, db), addClamp(sa, mulDiv255(da, invSa))
}

func multiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		return (s*d + 127) / 255
	})
}

func screen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		return s + d - (s*d+127)/255
	})
}

func overlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		if d <= 127 {
			return (2*s*d + 127) / 255
		}
		return 255 - (2*(255-s)*(255-d)+127)/255
	})
}

func darken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		return min(s, d)
	})
}

func lighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		return max(s, d)
	})
}

func difference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		if s > d {
			return s - d
		}
		return d - s
	})
}

func exclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separable(sr, sg, sb, sa, dr, dg, db, da, func(s, d int) int {
		return s + d - (2*s*d+127)/255
	})
}

func unpremul(c, a byte) int {
	if a == 0 {
		return 0
	}
	v := (int(c)*255 + int(a)/2) / int(a)
	return min(v, 255)
}

func clampByte(v int) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}
