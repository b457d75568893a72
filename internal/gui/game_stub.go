//go:build !ebiten

package gui

import "github.com/san-kum/lifesim/internal/sim"

// Run always fails in builds without the ebiten tag.
func Run(*sim.Simulator, Options) error {
	return ErrNoGUI
}
