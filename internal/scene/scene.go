// SPDX-License-Identifier: Unlicense OR MIT

// Package scene describes demo windows of toggles in YAML.
package scene

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/iosfx/toggle/widget"
)

// Styles recognized by Scene.Style.
const (
	StyleCheckBox = "checkbox"
	StyleSwitch   = "switch"
)

//go:embed scenes/*.yaml
var builtin embed.FS

// Scene is a window showing a column of toggles.
type Scene struct {
	Title string `yaml:"title"`
	// Style selects how toggles are drawn, StyleCheckBox or StyleSwitch.
	Style string `yaml:"style"`
	// Width and Height are the window size in Dp. Zero selects the
	// platform default.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	// Padding surrounds the column, Spacing separates the toggles.
	Padding float32  `yaml:"padding"`
	Spacing float32  `yaml:"spacing"`
	Toggles []Toggle `yaml:"toggles"`
}

// Toggle configures a single toggle. Zero sizes keep the widget defaults.
type Toggle struct {
	On          bool     `yaml:"on"`
	AccentColor string   `yaml:"accent_color"`
	DurationMs  *float64 `yaml:"duration_ms"`
	ShowGlyphs  bool     `yaml:"show_glyphs"`

	PreferredWidth  float32 `yaml:"preferred_width"`
	PreferredHeight float32 `yaml:"preferred_height"`
	MinWidth        float32 `yaml:"min_width"`
	MinHeight       float32 `yaml:"min_height"`
	MaxWidth        float32 `yaml:"max_width"`
	MaxHeight       float32 `yaml:"max_height"`

	ScaleX     float32 `yaml:"scale_x"`
	ScaleY     float32 `yaml:"scale_y"`
	TranslateX float32 `yaml:"translate_x"`
	TranslateY float32 `yaml:"translate_y"`
	Padding    float32 `yaml:"padding"`
}

// Builtin returns the built in scene with the given name.
func Builtin(name string) (*Scene, error) {
	data, err := builtin.ReadFile("scenes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scene: no built in scene %q", name)
	}
	return Parse(bytes.NewReader(data))
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Unknown keys are errors.
func Parse(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := new(Scene)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) validate() error {
	switch s.Style {
	case "":
		s.Style = StyleCheckBox
	case StyleCheckBox, StyleSwitch:
	default:
		return fmt.Errorf("scene: unknown style %q", s.Style)
	}
	for i, t := range s.Toggles {
		if _, err := t.Options(); err != nil {
			return fmt.Errorf("scene: toggle %d: %w", i, err)
		}
	}
	return nil
}

// Options converts t to widget options.
func (t Toggle) Options() ([]widget.Option, error) {
	opts := []widget.Option{
		widget.On(t.On),
		widget.ShowGlyphs(t.ShowGlyphs),
	}
	if t.AccentColor != "" {
		c, err := ParseColor(t.AccentColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.AccentColor(c))
	}
	if t.DurationMs != nil {
		d, err := durationMs(*t.DurationMs)
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.Duration(d))
	}
	if t.PreferredWidth != 0 || t.PreferredHeight != 0 {
		opts = append(opts, widget.PreferredSize(unit.Dp(t.PreferredWidth), unit.Dp(t.PreferredHeight)))
	}
	if t.MinWidth != 0 || t.MinHeight != 0 {
		opts = append(opts, widget.MinSize(unit.Dp(t.MinWidth), unit.Dp(t.MinHeight)))
	}
	if t.MaxWidth != 0 || t.MaxHeight != 0 {
		opts = append(opts, widget.MaxSize(unit.Dp(t.MaxWidth), unit.Dp(t.MaxHeight)))
	}
	if t.ScaleX != 0 || t.ScaleY != 0 {
		opts = append(opts, widget.Scale(t.ScaleX, t.ScaleY))
	}
	if t.TranslateX != 0 || t.TranslateY != 0 {
		opts = append(opts, widget.Translate(unit.Dp(t.TranslateX), unit.Dp(t.TranslateY)))
	}
	if t.Padding != 0 {
		opts = append(opts, widget.Padding(layout.UniformInset(unit.Dp(t.Padding))))
	}
	return opts, nil
}

// durationMs converts ms milliseconds to a duration within the widget
// bounds. Clamping happens before the conversion, which would overflow
// for huge or infinite values.
func durationMs(ms float64) (time.Duration, error) {
	if math.IsNaN(ms) {
		return 0, fmt.Errorf("invalid duration_ms %v", ms)
	}
	lo := float64(widget.MinDuration) / float64(time.Millisecond)
	hi := float64(widget.MaxDuration) / float64(time.Millisecond)
	ms = math.Min(math.Max(ms, lo), hi)
	return time.Duration(ms * float64(time.Millisecond)), nil
}

// ParseColor parses a #rrggbb or #rrggbbaa hex color or a CSS color name.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xff
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}
