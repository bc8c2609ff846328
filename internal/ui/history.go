//go:build ebiten

package ui

import (
	"popsim/internal/render"
	"popsim/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HistoryOverlay draws the rolling population total over the map. H toggles
// it.
type HistoryOverlay struct {
	history *stats.History
	spark   *render.Sparkline
	values  []int
	visible bool
}

// NewHistoryOverlay plots history in a chart w pixels wide and h tall.
func NewHistoryOverlay(history *stats.History, w, h int) *HistoryOverlay {
	return &HistoryOverlay{history: history, spark: render.NewSparkline(w, h), visible: true}
}

// Update handles the visibility toggle.
func (o *HistoryOverlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the chart in the bottom-left corner of the map area.
func (o *HistoryOverlay) Draw(screen *ebiten.Image, mapHeight int) {
	if !o.visible || o.history.Len() == 0 {
		return
	}
	o.values = o.history.Values(o.values)
	lo, hi := o.history.Range()
	_, sh := o.spark.Size()
	o.spark.Draw(screen, o.values, lo, hi, 4, float64(mapHeight-sh-4))
}
