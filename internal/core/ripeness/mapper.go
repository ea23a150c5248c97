// Package ripeness maps Pomodorino progress onto the colour of a ripening tomato.
package ripeness

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// MinProgress is an unstarted tomato.
	MinProgress = 0.0
	// MaxProgress is a tomato left twice its goal.
	MaxProgress = 2.0
)

var (
	// ErrOutOfRange indicates progress outside [MinProgress, MaxProgress].
	ErrOutOfRange = errors.New("ripeness out of range")
	// ErrInvalidBreakpoints indicates a gradient that does not cover the full range.
	ErrInvalidBreakpoints = errors.New("invalid ripeness breakpoints")
)

// Neutral is what hosts draw when a colour cannot be computed.
var Neutral = color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}

// OutOfRangeError reports the rejected progress value.
type OutOfRangeError struct {
	Progress float64
}

func (e *OutOfRangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("progress %g outside [%g, %g]: %v", e.Progress, MinProgress, MaxProgress, ErrOutOfRange)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// Breakpoint pins a colour to a progress value.
type Breakpoint struct {
	Progress float64
	Color    colorful.Color
}

// Mapper interpolates linearly between ordered breakpoints.
type Mapper struct {
	breakpoints []Breakpoint
}

// NewMapper validates the gradient and returns a mapper for it.
func NewMapper(breakpoints []Breakpoint) (*Mapper, error) {
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("need at least two breakpoints, got %d: %w", len(breakpoints), ErrInvalidBreakpoints)
	}
	if breakpoints[0].Progress != MinProgress || breakpoints[len(breakpoints)-1].Progress != MaxProgress {
		return nil, fmt.Errorf("breakpoints must span [%g, %g]: %w", MinProgress, MaxProgress, ErrInvalidBreakpoints)
	}
	for i := 1; i < len(breakpoints); i++ {
		if !(breakpoints[i].Progress > breakpoints[i-1].Progress) {
			return nil, fmt.Errorf("breakpoint %d at %g does not follow %g: %w",
				i, breakpoints[i].Progress, breakpoints[i-1].Progress, ErrInvalidBreakpoints)
		}
	}
	return &Mapper{breakpoints: append([]Breakpoint(nil), breakpoints...)}, nil
}

// Default returns the green to overripe tomato gradient.
func Default() *Mapper {
	mapper, err := NewMapper(DefaultBreakpoints())
	if err != nil {
		panic(err)
	}
	return mapper
}

// DefaultBreakpoints lists the stages of the default gradient.
func DefaultBreakpoints() []Breakpoint {
	return []Breakpoint{
		{Progress: 0.0, Color: rgb(0x6A, 0xB0, 0x4C)},
		{Progress: 0.5, Color: rgb(0xE8, 0xC5, 0x47)},
		{Progress: 1.0, Color: rgb(0xE0, 0x3C, 0x31)},
		{Progress: 1.5, Color: rgb(0xA8, 0x1E, 0x1E)},
		{Progress: 2.0, Color: rgb(0x5C, 0x1A, 0x12)},
	}
}

// Breakpoints returns a copy of the gradient.
func (mapper *Mapper) Breakpoints() []Breakpoint {
	return append([]Breakpoint(nil), mapper.breakpoints...)
}

// Color returns the tomato colour for progress.
func (mapper *Mapper) Color(progress float64) (color.NRGBA, error) {
	blended, err := mapper.blend(progress)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := blended.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Hex returns the tomato colour for progress as #rrggbb.
func (mapper *Mapper) Hex(progress float64) (string, error) {
	nrgba, err := mapper.Color(progress)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B), nil
}

// ColorOrNeutral returns Neutral when progress is out of range and logs why.
func (mapper *Mapper) ColorOrNeutral(progress float64, logger *slog.Logger) color.NRGBA {
	nrgba, err := mapper.Color(progress)
	if err != nil {
		if logger != nil {
			logger.Warn("ripeness colour fallback", "progress", progress, "error", err)
		}
		return Neutral
	}
	return nrgba
}

func (mapper *Mapper) blend(progress float64) (colorful.Color, error) {
	if math.IsNaN(progress) || progress < MinProgress || progress > MaxProgress {
		return colorful.Color{}, &OutOfRangeError{Progress: progress}
	}
	for i := 1; i < len(mapper.breakpoints); i++ {
		lower := mapper.breakpoints[i-1]
		upper := mapper.breakpoints[i]
		if progress > upper.Progress {
			continue
		}
		if progress == upper.Progress {
			return upper.Color, nil
		}
		fraction := (progress - lower.Progress) / (upper.Progress - lower.Progress)
		return lower.Color.BlendRgb(upper.Color, fraction), nil
	}
	return mapper.breakpoints[len(mapper.breakpoints)-1].Color, nil
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
