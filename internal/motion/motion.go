// Package motion maps page scroll progress to the hero banner's parallax
// offset and fade.
package motion

import (
	"fmt"
	"strings"
)

const (
	heroEnd        = 0.6
	heroMaxOffset  = -120.0
	heroMinOpacity = 0.85
)

type Transform struct {
	OffsetY float64
	Opacity float64
}

// Hero maps progress in [0, 1] to the hero transform. Progress past 0.6 holds
// the final value; out-of-range input is clamped.
func Hero(progress float64) Transform {
	p := clamp(progress, 0, 1)
	t := clamp(p/heroEnd, 0, 1)

	return Transform{
		OffsetY: lerp(0, heroMaxOffset, t),
		Opacity: lerp(1, heroMinOpacity, t),
	}
}

// Keyframes renders a CSS @keyframes rule sampling Hero at steps+1 evenly
// spaced points. Meant to be bound to a scroll() animation timeline.
func Keyframes(name string, steps int) string {
	if steps < 1 {
		steps = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s{", name)
	for i := 0; i <= steps; i++ {
		p := float64(i) / float64(steps)
		tr := Hero(p)
		fmt.Fprintf(&b, "%s{transform:translateY(%spx);opacity:%s}",
			percent(p), format(tr.OffsetY), format(tr.Opacity))
	}
	b.WriteString("}")
	return b.String()
}

func percent(p float64) string {
	return format(p*100) + "%"
}

func format(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp(v, lo, hi float64) float64 {
	if v != v {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
