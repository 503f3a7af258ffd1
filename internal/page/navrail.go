// internal/page/navrail.go
package page

import "go-magnetic-field/internal/config"

// Section — секция страницы с её верхней координатой в документе
type Section struct {
	ID  string
	Top float64
}

// NavRail — навигационная «дорожка» из узлов-ссылок на секции
type NavRail struct {
	Nodes []string // href узлов, например "#about"

	ActiveIndex int
	Progress    float64 // процент заполнения дорожки, [0, 100]
	Current     string  // id активной секции
}

func NewNavRail(nodes []string) *NavRail {
	return &NavRail{Nodes: nodes}
}

// Update выбирает последнюю секцию, верх которой минус NavSectionOffset уже пройден,
// и пересчитывает активный узел и заполнение дорожки.
func (n *NavRail) Update(scrollY float64, sections []Section) {
	current := ""
	for _, s := range sections {
		if scrollY >= s.Top-config.NavSectionOffset {
			current = s.ID
		}
	}
	n.Current = current

	n.ActiveIndex = 0
	for i, href := range n.Nodes {
		if href == "#"+current {
			n.ActiveIndex = i
		}
	}

	if len(n.Nodes) > 1 {
		n.Progress = float64(n.ActiveIndex) / float64(len(n.Nodes)-1) * 100
	}
}

// IsActive сообщает, подсвечен ли узел i
func (n *NavRail) IsActive(i int) bool {
	return n.Current != "" && n.Nodes[i] == "#"+n.Current
}
