package internal

import (
	"github.com/robinovitch61/vl/internal/keymap"
	"github.com/robinovitch61/vl/internal/viewport"
	"time"
)

type Config struct {
	KeyMap        keymap.KeyMap
	Items         int
	ItemHeight    int
	BatchSize     int
	Viewport      viewport.Kind
	PaneHeight    int
	Measure       bool
	FrameInterval time.Duration
	Title         string
	Version       string
}
