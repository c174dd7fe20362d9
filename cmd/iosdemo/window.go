// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/iosfx/toggle/internal/scene"
	"github.com/iosfx/toggle/widget"
	"github.com/iosfx/toggle/widget/ios"
)

// launchWindow runs the scene window and blocks in app.Main. The process
// exits when the window is closed.
func launchWindow(s *scene.Scene, log *slog.Logger) error {
	d, err := newDemo(s, log)
	if err != nil {
		return err
	}
	go func() {
		if err := d.run(); err != nil {
			log.Error("window failed", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

type demo struct {
	scene   *scene.Scene
	log     *slog.Logger
	theme   *material.Theme
	toggles []*widget.Toggle
}

func newDemo(s *scene.Scene, log *slog.Logger) (*demo, error) {
	d := &demo{
		scene: s,
		log:   log,
		theme: material.NewTheme(),
	}
	d.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	for i, tc := range s.Toggles {
		opts, err := tc.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, widget.OnChange(func(on bool) {
			log.Info("toggle changed", "index", i, "on", on)
		}))
		d.toggles = append(d.toggles, widget.New(opts...))
	}
	log.Debug("scene loaded", "title", s.Title, "style", s.Style, "toggles", len(d.toggles))
	return d, nil
}

func (d *demo) run() error {
	w := new(app.Window)
	opts := []app.Option{app.Title(d.scene.Title)}
	if d.scene.Width > 0 && d.scene.Height > 0 {
		opts = append(opts, app.Size(unit.Dp(d.scene.Width), unit.Dp(d.scene.Height)))
	}
	w.Option(opts...)
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) style(t *widget.Toggle) ios.ToggleStyle {
	if d.scene.Style == scene.StyleSwitch {
		return ios.Switch(t)
	}
	return ios.CheckBox(t)
}

// layout stacks the toggles vertically, each followed by a label showing
// its value.
func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	spacing := unit.Dp(d.scene.Spacing)
	children := make([]layout.FlexChild, 0, 2*len(d.toggles))
	for i, t := range d.toggles {
		if i > 0 {
			children = append(children, layout.Rigid(layout.Spacer{Height: spacing}.Layout))
		}
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(d.style(t).Layout),
				layout.Rigid(layout.Spacer{Width: spacing}.Layout),
				layout.Rigid(material.Body1(d.theme, stateLabel(t)).Layout),
			)
		}))
	}
	return layout.UniformInset(unit.Dp(d.scene.Padding)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}

func stateLabel(t *widget.Toggle) string {
	if t.On() {
		return "On"
	}
	return "Off"
}
