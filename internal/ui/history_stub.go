//go:build !ebiten

package ui

import "popsim/internal/stats"

// HistoryOverlay is a no-op placeholder used when the ebiten build tag is absent.
type HistoryOverlay struct{}

// NewHistoryOverlay constructs a stub overlay.
func NewHistoryOverlay(*stats.History, int, int) *HistoryOverlay { return &HistoryOverlay{} }

// Update is a no-op in headless builds.
func (o *HistoryOverlay) Update() {}

// Draw is a no-op placeholder.
func (o *HistoryOverlay) Draw(any, int) {}
