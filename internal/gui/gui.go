// Package gui renders a Life run in a desktop window.
//
// The window is built on ebiten and only compiled with the ebiten build
// tag; default builds get a stub whose Run reports [ErrNoGUI].
package gui

import (
	"errors"
	"time"
)

var ErrNoGUI = errors.New("gui: built without the 'ebiten' tag; rebuild with -tags ebiten")

type Options struct {
	Title       string
	Scale       int
	Delay       time.Duration
	Generations int // 0 runs until closed
	Running     bool
	Palette     Palette
}

func (o Options) withDefaults() Options {
	if o.Scale < 1 {
		o.Scale = 10
	}
	if o.Title == "" {
		o.Title = "lifesim"
	}
	if o.Palette == (Palette{}) {
		o.Palette = DefaultPalette
	}
	return o
}
