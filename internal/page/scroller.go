// internal/page/scroller.go
package page

import (
	"math"
	"strings"

	"go-magnetic-field/internal/config"
	"go-magnetic-field/internal/utils"
)

// Scroller — плавная прокрутка к якорю для хостов без нативной smooth-прокрутки.
type Scroller struct {
	Y      float64
	target float64
	max    float64
}

func NewScroller(maxY float64) *Scroller {
	return &Scroller{max: maxY}
}

// SetMax задаёт предел прокрутки (высота документа минус высота окна)
func (s *Scroller) SetMax(maxY float64) {
	s.max = math.Max(maxY, 0)
	s.target = utils.Clamp(s.target, 0, s.max)
	s.Y = utils.Clamp(s.Y, 0, s.max)
}

// ScrollTo начинает плавную прокрутку к y
func (s *Scroller) ScrollTo(y float64) {
	s.target = utils.Clamp(y, 0, s.max)
}

// ScrollBy сдвигает цель прокрутки, например колесом мыши
func (s *Scroller) ScrollBy(dy float64) {
	s.ScrollTo(s.target + dy)
}

// Step приближает позицию к цели и сообщает, изменилась ли она
func (s *Scroller) Step() bool {
	if s.Y == s.target {
		return false
	}
	next := utils.Lerp(s.Y, s.target, config.ScrollEase)
	if math.Abs(s.target-next) < config.ScrollSnap {
		next = s.target
	}
	s.Y = next
	return true
}

func (s *Scroller) Target() float64 { return s.target }

// AnchorID достаёт id цели из ссылки вида "#about".
// Пустой фрагмент ("#") целью не считается.
func AnchorID(href string) (string, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
