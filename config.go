package main

import "time"

const (
	// --- Window ---
	WindowTitle         = "Ring Light"
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768

	// --- Snapshot ---
	DefaultSnapshotWidth  = 1280
	DefaultSnapshotHeight = 720
	ScreenshotPattern     = "ring-light-20060102-150405.png"

	// --- Settings ---
	// WatchDebounce coalesces bursts of file events from editors.
	WatchDebounce = 150 * time.Millisecond
	// SaveDelay batches rapid changes (held arrow keys) into one write.
	SaveDelay = 500 * time.Millisecond

	// --- UI ---
	UIFontPath = "fonts/Roboto-Regular.ttf"
	UIFontSize = 16
)
