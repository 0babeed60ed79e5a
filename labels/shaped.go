package labels

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// DefaultSize is the label font size, in pixels, used by NewShaped.
const DefaultSize = 10

// Shaped measures text shaped with HarfBuzz over a TrueType font, so
// kerning and ligatures are reflected in the width.
//
// Shaped is safe for concurrent use.
type Shaped struct {
	font *font.Font
	size float64

	// HarfbuzzShaper keeps an internal buffer and is not safe for
	// concurrent use.
	shapers sync.Pool
}

// NewShaped returns a Shaped measurer over the Go Regular font at the
// given pixel size. Sizes <= 0 use DefaultSize.
func NewShaped(size float64) (*Shaped, error) {
	return NewShapedFromTTF(goregular.TTF, size)
}

// NewShapedFromTTF parses TrueType or OpenType font data and returns a
// Shaped measurer at the given pixel size.
func NewShapedFromTTF(data []byte, size float64) (*Shaped, error) {
	if size <= 0 {
		size = DefaultSize
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("labels: parse font: %w", err)
	}
	return &Shaped{
		font: face.Font,
		size: size,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

// Size returns the font size in pixels.
func (s *Shaped) Size() float64 {
	return s.size
}

// Width implements Measurer.
func (s *Shaped) Width(text string) float64 {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; it is cheap to create.
		Face:     font.NewFace(s.font),
		Size:     fixed.Int26_6(s.size * 64),
		Script:   scriptOf(runes),
		Language: language.NewLanguage("en"),
	}

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.shapers.Put(hb)

	return float64(out.Advance) / 64
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
