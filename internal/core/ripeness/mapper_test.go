package ripeness

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestDefaultAnchors(t *testing.T) {
	mapper := Default()
	cases := []struct {
		progress float64
		want     color.NRGBA
	}{
		{0.0, color.NRGBA{R: 0x6A, G: 0xB0, B: 0x4C, A: 0xFF}},
		{1.0, color.NRGBA{R: 0xE0, G: 0x3C, B: 0x31, A: 0xFF}},
		{2.0, color.NRGBA{R: 0x5C, G: 0x1A, B: 0x12, A: 0xFF}},
	}
	for _, tc := range cases {
		got, err := mapper.Color(tc.progress)
		if err != nil {
			t.Fatalf("Color(%v) failed: %v", tc.progress, err)
		}
		if got != tc.want {
			t.Fatalf("Color(%v) = %+v, want %+v", tc.progress, got, tc.want)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	mapper := Default()
	for _, progress := range []float64{-0.1, 2.1, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := mapper.Color(progress)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange for %v, got %v", progress, err)
		}
		var rangeErr *OutOfRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected OutOfRangeError for %v", progress)
		}
		if _, err := mapper.Hex(progress); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected Hex to fail for %v", progress)
		}
	}
}

func TestInterpolationIsMonotonicPerSegment(t *testing.T) {
	mapper := Default()
	breakpoints := mapper.Breakpoints()
	for i := 1; i < len(breakpoints); i++ {
		lower, upper := breakpoints[i-1], breakpoints[i]
		previous, err := mapper.Color(lower.Progress)
		if err != nil {
			t.Fatalf("Color failed: %v", err)
		}
		const steps = 50
		for step := 1; step <= steps; step++ {
			progress := lower.Progress + (upper.Progress-lower.Progress)*float64(step)/steps
			if progress > upper.Progress {
				progress = upper.Progress
			}
			current, err := mapper.Color(progress)
			if err != nil {
				t.Fatalf("Color(%v) failed: %v", progress, err)
			}
			lr, lg, lb := lower.Color.RGB255()
			ur, ug, ub := upper.Color.RGB255()
			if !movesToward(previous.R, current.R, lr, ur) ||
				!movesToward(previous.G, current.G, lg, ug) ||
				!movesToward(previous.B, current.B, lb, ub) {
				t.Fatalf("non-monotonic step at %v: %+v -> %+v", progress, previous, current)
			}
			previous = current
		}
	}
}

func movesToward(previous, current, from, to uint8) bool {
	if to >= from {
		return current >= previous
	}
	return current <= previous
}

func TestMidpointBlendsNeighbours(t *testing.T) {
	mapper, err := NewMapper([]Breakpoint{
		{Progress: 0, Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Progress: 2, Color: colorful.Color{R: 1, G: 1, B: 1}},
	})
	if err != nil {
		t.Fatalf("NewMapper failed: %v", err)
	}
	got, err := mapper.Color(1.0)
	if err != nil {
		t.Fatalf("Color failed: %v", err)
	}
	if got.R != 128 || got.G != 128 || got.B != 128 {
		t.Fatalf("expected mid grey, got %+v", got)
	}
	hex, err := mapper.Hex(2.0)
	if err != nil || hex != "#ffffff" {
		t.Fatalf("expected #ffffff, got %q (%v)", hex, err)
	}
}

func TestNewMapperValidation(t *testing.T) {
	cases := map[string][]Breakpoint{
		"empty":         nil,
		"single":        {{Progress: 0}},
		"short range":   {{Progress: 0}, {Progress: 1}},
		"late start":    {{Progress: 0.5}, {Progress: 2}},
		"not ascending": {{Progress: 0}, {Progress: 1.5}, {Progress: 1.0}, {Progress: 2}},
		"duplicate":     {{Progress: 0}, {Progress: 1}, {Progress: 1}, {Progress: 2}},
	}
	for name, breakpoints := range cases {
		if _, err := NewMapper(breakpoints); !errors.Is(err, ErrInvalidBreakpoints) {
			t.Fatalf("%s: expected ErrInvalidBreakpoints, got %v", name, err)
		}
	}
}

func TestColorOrNeutralLogsFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mapper := Default()

	if got := mapper.ColorOrNeutral(3, logger); got != Neutral {
		t.Fatalf("expected neutral fallback, got %+v", got)
	}
	if !strings.Contains(buf.String(), "ripeness colour fallback") {
		t.Fatalf("expected fallback to be logged, got %q", buf.String())
	}

	buf.Reset()
	want, _ := mapper.Color(0.5)
	if got := mapper.ColorOrNeutral(0.5, logger); got != want {
		t.Fatalf("expected in-range colour, got %+v", got)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log for in-range progress")
	}
	if got := mapper.ColorOrNeutral(-1, nil); got != Neutral {
		t.Fatalf("expected neutral fallback without logger")
	}
}
