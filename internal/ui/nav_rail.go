// internal/ui/nav_rail.go
package ui

import (
	"image/color"

	"go-magnetic-field/internal/page"
	"go-magnetic-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NavRailView рисует вертикальную «дорожку печатной платы» с узлами секций.
type NavRailView struct {
	X, Top, Bottom float32
	NodeRadius     float32
	TrackColor     color.RGBA
	FlowColor      color.RGBA
}

func NewNavRailView(x, top, bottom, nodeRadius float32, flow color.RGBA) *NavRailView {
	return &NavRailView{
		X:          x,
		Top:        top,
		Bottom:     bottom,
		NodeRadius: nodeRadius,
		TrackColor: render.DarkenColor(flow),
		FlowColor:  flow,
	}
}

// NodeY — вертикальная позиция узла i из n
func (v *NavRailView) NodeY(i, n int) float32 {
	if n <= 1 {
		return v.Top
	}
	return v.Top + (v.Bottom-v.Top)*float32(i)/float32(n-1)
}

// HitNode возвращает индекс узла под курсором
func (v *NavRailView) HitNode(mx, my float32, n int) (int, bool) {
	r := v.NodeRadius * 2 // узлы мелкие, расширяем зону клика
	for i := 0; i < n; i++ {
		dx := mx - v.X
		dy := my - v.NodeY(i, n)
		if dx*dx+dy*dy <= r*r {
			return i, true
		}
	}
	return 0, false
}

// Draw отрисовывает дорожку, заполненную на rail.Progress процентов
func (v *NavRailView) Draw(screen *ebiten.Image, rail *page.NavRail) {
	vector.StrokeLine(screen, v.X, v.Top, v.X, v.Bottom, 2, v.TrackColor, true)
	flowBottom := v.Top + (v.Bottom-v.Top)*float32(rail.Progress/100)
	vector.StrokeLine(screen, v.X, v.Top, v.X, flowBottom, 2, v.FlowColor, true)

	n := len(rail.Nodes)
	for i := 0; i < n; i++ {
		y := v.NodeY(i, n)
		if rail.IsActive(i) {
			vector.DrawFilledCircle(screen, v.X, y, v.NodeRadius*1.4, v.FlowColor, true)
		} else {
			vector.DrawFilledCircle(screen, v.X, y, v.NodeRadius, v.TrackColor, true)
			vector.StrokeCircle(screen, v.X, y, v.NodeRadius, 1, v.FlowColor, true)
		}
	}
}
