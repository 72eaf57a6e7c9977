package glyph

import "honnef.co/go/curve"

// Template coordinates live in a unit box with the baseline at y=1.
// Lowercase bodies occupy y in [0.35, 1] with ascenders reaching 0 and
// descenders reaching about 1.35; uppercase and digits span [0, 1].

// poly builds an open polyline stroke from (x, y) pairs.
func poly(coords ...float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(coords[0], coords[1]))
	for i := 2; i < len(coords); i += 2 {
		p.LineTo(curve.Pt(coords[i], coords[i+1]))
	}
	return p
}

// quad builds a stroke from a start pair followed by (cx, cy, x, y) groups,
// one quadratic segment each.
func quad(coords ...float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(coords[0], coords[1]))
	for i := 2; i+3 < len(coords); i += 4 {
		p.QuadTo(curve.Pt(coords[i], coords[i+1]), curve.Pt(coords[i+2], coords[i+3]))
	}
	return p
}

func t(strokes ...curve.BezPath) Template {
	return Template{Strokes: strokes}
}

func builtinTemplates() map[rune]Template {
	return map[rune]Template{
		// Lowercase.
		'a': t(quad(0.72, 0.42, 0.25, 0.30, 0.22, 0.68, 0.20, 1.05, 0.72, 0.95),
			poly(0.72, 0.38, 0.72, 1.00)),
		'b': t(poly(0.20, 0.00, 0.20, 1.00),
			quad(0.20, 0.52, 0.85, 0.42, 0.82, 0.72, 0.78, 1.03, 0.20, 0.96)),
		'c': t(quad(0.80, 0.45, 0.18, 0.25, 0.18, 0.68, 0.18, 1.12, 0.80, 0.92)),
		'd': t(poly(0.80, 0.00, 0.80, 1.00),
			quad(0.80, 0.52, 0.15, 0.42, 0.18, 0.72, 0.22, 1.03, 0.80, 0.96)),
		'e': t(poly(0.18, 0.64, 0.80, 0.60),
			quad(0.80, 0.60, 0.78, 0.30, 0.48, 0.34, 0.12, 0.40, 0.18, 0.70, 0.26, 1.06, 0.80, 0.92)),
		'f': t(quad(0.75, 0.08, 0.44, -0.04, 0.42, 0.45, 0.40, 0.75, 0.40, 1.00),
			poly(0.20, 0.45, 0.68, 0.45)),
		'g': t(quad(0.72, 0.42, 0.22, 0.32, 0.22, 0.66, 0.22, 1.00, 0.72, 0.90),
			quad(0.72, 0.38, 0.75, 0.90, 0.72, 1.10, 0.68, 1.38, 0.25, 1.30)),
		'h': t(poly(0.20, 0.00, 0.20, 1.00),
			quad(0.20, 0.58, 0.50, 0.28, 0.72, 0.50, 0.72, 0.75, 0.72, 1.00)),
		'i': t(poly(0.50, 0.35, 0.50, 1.00), poly(0.50, 0.12, 0.50, 0.16)),
		'j': t(quad(0.55, 0.35, 0.58, 1.05, 0.52, 1.20, 0.45, 1.40, 0.18, 1.28),
			poly(0.55, 0.12, 0.55, 0.16)),
		'k': t(poly(0.20, 0.00, 0.20, 1.00), poly(0.72, 0.38, 0.20, 0.68, 0.75, 1.00)),
		'l': t(poly(0.50, 0.00, 0.50, 1.00)),
		'm': t(poly(0.15, 0.38, 0.15, 1.00),
			quad(0.15, 0.55, 0.32, 0.30, 0.48, 0.52, 0.48, 0.75, 0.48, 1.00),
			quad(0.48, 0.55, 0.66, 0.30, 0.85, 0.52, 0.85, 0.75, 0.85, 1.00)),
		'n': t(poly(0.22, 0.38, 0.22, 1.00),
			quad(0.22, 0.55, 0.50, 0.30, 0.75, 0.50, 0.75, 0.75, 0.75, 1.00)),
		'o': t(quad(0.50, 0.33, 0.16, 0.33, 0.16, 0.66, 0.16, 1.00, 0.50, 1.00,
			0.84, 1.00, 0.84, 0.66, 0.84, 0.33, 0.50, 0.33)),
		'p': t(poly(0.20, 0.38, 0.20, 1.35),
			quad(0.20, 0.50, 0.85, 0.40, 0.82, 0.70, 0.78, 1.00, 0.20, 0.94)),
		'q': t(quad(0.78, 0.50, 0.15, 0.40, 0.18, 0.70, 0.22, 1.00, 0.78, 0.94),
			poly(0.78, 0.38, 0.78, 1.35)),
		'r': t(poly(0.25, 0.38, 0.25, 1.00),
			quad(0.25, 0.58, 0.50, 0.30, 0.75, 0.42)),
		's': t(quad(0.75, 0.42, 0.25, 0.30, 0.32, 0.58, 0.80, 0.70, 0.72, 0.90, 0.62, 1.08, 0.22, 0.92)),
		't': t(quad(0.45, 0.08, 0.45, 0.60, 0.45, 0.85, 0.45, 1.03, 0.72, 0.95),
			poly(0.22, 0.40, 0.72, 0.40)),
		'u': t(quad(0.20, 0.38, 0.18, 0.95, 0.50, 0.98, 0.75, 1.00, 0.78, 0.60),
			poly(0.78, 0.38, 0.78, 1.00)),
		'v': t(poly(0.20, 0.38, 0.50, 1.00, 0.80, 0.38)),
		'w': t(poly(0.12, 0.38, 0.32, 1.00, 0.50, 0.55, 0.68, 1.00, 0.88, 0.38)),
		'x': t(poly(0.20, 0.38, 0.80, 1.00), poly(0.80, 0.38, 0.20, 1.00)),
		'y': t(poly(0.20, 0.38, 0.50, 1.00),
			quad(0.80, 0.38, 0.62, 0.90, 0.50, 1.10, 0.38, 1.38, 0.15, 1.28)),
		'z': t(poly(0.20, 0.38, 0.78, 0.38, 0.20, 1.00, 0.80, 1.00)),

		// Uppercase.
		'A': t(poly(0.10, 1.00, 0.50, 0.00, 0.90, 1.00), poly(0.28, 0.62, 0.72, 0.62)),
		'B': t(poly(0.18, 0.00, 0.18, 1.00),
			quad(0.18, 0.02, 0.78, 0.00, 0.76, 0.25, 0.74, 0.48, 0.18, 0.50),
			quad(0.18, 0.50, 0.85, 0.50, 0.83, 0.75, 0.80, 1.00, 0.18, 0.98)),
		'C': t(quad(0.85, 0.15, 0.15, -0.05, 0.15, 0.50, 0.15, 1.05, 0.85, 0.85)),
		'D': t(poly(0.18, 0.00, 0.18, 1.00),
			quad(0.18, 0.02, 0.88, 0.05, 0.88, 0.50, 0.88, 0.95, 0.18, 0.98)),
		'E': t(poly(0.80, 0.00, 0.20, 0.00, 0.20, 1.00, 0.80, 1.00), poly(0.20, 0.50, 0.68, 0.50)),
		'F': t(poly(0.80, 0.00, 0.20, 0.00, 0.20, 1.00), poly(0.20, 0.50, 0.66, 0.50)),
		'G': t(quad(0.85, 0.12, 0.12, -0.05, 0.14, 0.52, 0.16, 1.08, 0.85, 0.90),
			poly(0.85, 0.90, 0.85, 0.58, 0.55, 0.58)),
		'H': t(poly(0.18, 0.00, 0.18, 1.00), poly(0.82, 0.00, 0.82, 1.00), poly(0.18, 0.50, 0.82, 0.50)),
		'I': t(poly(0.50, 0.00, 0.50, 1.00), poly(0.30, 0.00, 0.70, 0.00), poly(0.30, 1.00, 0.70, 1.00)),
		'J': t(quad(0.75, 0.00, 0.78, 0.75, 0.60, 0.95, 0.40, 1.10, 0.22, 0.82)),
		'K': t(poly(0.20, 0.00, 0.20, 1.00), poly(0.80, 0.00, 0.20, 0.55, 0.82, 1.00)),
		'L': t(poly(0.22, 0.00, 0.22, 1.00, 0.80, 1.00)),
		'M': t(poly(0.12, 1.00, 0.12, 0.00, 0.50, 0.70, 0.88, 0.00, 0.88, 1.00)),
		'N': t(poly(0.15, 1.00, 0.15, 0.00, 0.85, 1.00, 0.85, 0.00)),
		'O': t(quad(0.50, 0.00, 0.12, 0.00, 0.12, 0.50, 0.12, 1.00, 0.50, 1.00,
			0.88, 1.00, 0.88, 0.50, 0.88, 0.00, 0.50, 0.00)),
		'P': t(poly(0.20, 0.00, 0.20, 1.00),
			quad(0.20, 0.02, 0.85, 0.00, 0.83, 0.28, 0.80, 0.55, 0.20, 0.55)),
		'Q': t(quad(0.50, 0.00, 0.12, 0.00, 0.12, 0.50, 0.12, 1.00, 0.50, 1.00,
			0.88, 1.00, 0.88, 0.50, 0.88, 0.00, 0.50, 0.00),
			poly(0.62, 0.72, 0.90, 1.05)),
		'R': t(poly(0.20, 0.00, 0.20, 1.00),
			quad(0.20, 0.02, 0.85, 0.00, 0.83, 0.28, 0.80, 0.55, 0.20, 0.55),
			poly(0.50, 0.55, 0.85, 1.00)),
		'S': t(quad(0.80, 0.12, 0.22, -0.02, 0.28, 0.28, 0.34, 0.50, 0.62, 0.50,
			0.90, 0.52, 0.78, 0.80, 0.66, 1.08, 0.18, 0.88)),
		'T': t(poly(0.10, 0.00, 0.90, 0.00), poly(0.50, 0.00, 0.50, 1.00)),
		'U': t(quad(0.15, 0.00, 0.13, 1.00, 0.50, 1.00, 0.87, 1.00, 0.85, 0.00)),
		'V': t(poly(0.12, 0.00, 0.50, 1.00, 0.88, 0.00)),
		'W': t(poly(0.08, 0.00, 0.28, 1.00, 0.50, 0.35, 0.72, 1.00, 0.92, 0.00)),
		'X': t(poly(0.15, 0.00, 0.85, 1.00), poly(0.85, 0.00, 0.15, 1.00)),
		'Y': t(poly(0.15, 0.00, 0.50, 0.50, 0.50, 1.00), poly(0.85, 0.00, 0.50, 0.50)),
		'Z': t(poly(0.15, 0.00, 0.85, 0.00, 0.15, 1.00, 0.85, 1.00)),

		// Digits.
		'0': t(quad(0.50, 0.00, 0.18, 0.00, 0.18, 0.50, 0.18, 1.00, 0.50, 1.00,
			0.82, 1.00, 0.82, 0.50, 0.82, 0.00, 0.50, 0.00)),
		'1': t(poly(0.35, 0.18, 0.55, 0.00, 0.55, 1.00)),
		'2': t(quad(0.20, 0.20, 0.32, -0.08, 0.62, 0.06, 0.92, 0.20, 0.55, 0.58),
			poly(0.55, 0.58, 0.15, 1.00, 0.85, 1.00)),
		'3': t(quad(0.20, 0.10, 0.55, -0.08, 0.70, 0.10, 0.85, 0.30, 0.45, 0.48,
			0.95, 0.52, 0.80, 0.80, 0.65, 1.10, 0.18, 0.90)),
		'4': t(poly(0.65, 1.00, 0.65, 0.00, 0.15, 0.68, 0.85, 0.68)),
		'5': t(poly(0.80, 0.00, 0.25, 0.00, 0.22, 0.45),
			quad(0.22, 0.45, 0.85, 0.35, 0.80, 0.70, 0.75, 1.05, 0.20, 0.90)),
		'6': t(quad(0.75, 0.05, 0.30, 0.15, 0.22, 0.55, 0.15, 1.00, 0.50, 1.00,
			0.85, 1.00, 0.80, 0.70, 0.75, 0.45, 0.25, 0.62)),
		'7': t(poly(0.15, 0.00, 0.85, 0.00, 0.40, 1.00)),
		'8': t(quad(0.50, 0.00, 0.20, 0.00, 0.22, 0.24, 0.24, 0.48, 0.50, 0.48,
			0.76, 0.48, 0.78, 0.24, 0.80, 0.00, 0.50, 0.00),
			quad(0.50, 0.48, 0.15, 0.48, 0.17, 0.74, 0.19, 1.00, 0.50, 1.00,
				0.81, 1.00, 0.83, 0.74, 0.85, 0.48, 0.50, 0.48)),
		'9': t(quad(0.25, 0.95, 0.70, 0.85, 0.78, 0.45, 0.85, 0.00, 0.50, 0.00,
			0.15, 0.00, 0.20, 0.30, 0.25, 0.55, 0.75, 0.38)),

		// Punctuation.
		'.':  t(poly(0.50, 0.92, 0.50, 1.00)),
		',':  t(quad(0.55, 0.92, 0.55, 1.05, 0.42, 1.18)),
		'!':  t(poly(0.50, 0.00, 0.50, 0.70), poly(0.50, 0.92, 0.50, 1.00)),
		'?':  t(quad(0.25, 0.18, 0.30, -0.10, 0.60, 0.02, 0.90, 0.14, 0.62, 0.45, 0.50, 0.58, 0.50, 0.70),
			poly(0.50, 0.92, 0.50, 1.00)),
		'-':  t(poly(0.25, 0.55, 0.75, 0.55)),
		'\'': t(poly(0.50, 0.00, 0.48, 0.18)),
		':':  t(poly(0.50, 0.45, 0.50, 0.52), poly(0.50, 0.92, 0.50, 1.00)),
		';':  t(poly(0.50, 0.45, 0.50, 0.52), quad(0.55, 0.92, 0.55, 1.05, 0.42, 1.18)),
	}
}

func classTemplates() map[Class]Template {
	return map[Class]Template{
		Lowercase: t(quad(0.50, 0.33, 0.16, 0.33, 0.16, 0.66, 0.16, 1.00, 0.50, 1.00,
			0.84, 1.00, 0.84, 0.66, 0.84, 0.33, 0.50, 0.33)),
		Uppercase: t(quad(0.50, 0.00, 0.12, 0.00, 0.12, 0.50, 0.12, 1.00, 0.50, 1.00,
			0.88, 1.00, 0.88, 0.50, 0.88, 0.00, 0.50, 0.00)),
		Digit: t(quad(0.50, 0.00, 0.18, 0.00, 0.18, 0.50, 0.18, 1.00, 0.50, 1.00,
			0.82, 1.00, 0.82, 0.50, 0.82, 0.00, 0.50, 0.00)),
		Punctuation: t(poly(0.50, 0.92, 0.50, 1.00)),
	}
}

// genericTemplate is the documented last-resort shape for characters with
// neither an exact nor a class template: a single shallow curve.
func genericTemplate() Template {
	return t(quad(0.20, 0.85, 0.50, 0.20, 0.80, 0.85))
}
