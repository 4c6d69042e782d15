package constants

import (
	"regexp"
	"time"
)

// *********************************************************************************************************************
// THESE ARE KEY TO SMOOTH SCROLLING & RESPONSIVENESS WITH LARGE ITEM COUNTS (EXACT VALUES DETERMINED BY FEEL)

// FrameInterval is the length of one rendering frame. Scroll-driven redraws and viewport change notifications are
// coalesced to at most one per frame
var FrameInterval = 16 * time.Millisecond

// KeypressBlockDuration controls how long viewport change notifications are held back after a keypress, giving
// key-driven smooth scrolling (page, home, end) time to settle before the window is recomputed
var KeypressBlockDuration = 200 * time.Millisecond

// BlockedChangeRetryInterval controls how often a held back viewport change is retried
var BlockedChangeRetryInterval = 100 * time.Millisecond

// *********************************************************************************************************************

var AnsiRegex = regexp.MustCompile("\x1b\\[[0-9;]*m")

// DefaultBatchSize is the number of slots in the pool when none is given
const DefaultBatchSize = 20

// DefaultItemHeight is the estimated height of an item in rows when none is given
const DefaultItemHeight = 1

// MouseWheelRows is the number of rows scrolled per mouse wheel notch
const MouseWheelRows = 3

// ToastDuration controls how long toasts stay on screen
var ToastDuration = 5 * time.Second
