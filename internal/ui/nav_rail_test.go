package ui

import (
	"image/color"
	"testing"
)

func TestNavRailViewNodeY(t *testing.T) {
	v := NewNavRailView(32, 100, 500, 5, color.RGBA{100, 255, 218, 255})
	tests := []struct {
		i, n int
		want float32
	}{
		{0, 5, 100},
		{2, 5, 300},
		{4, 5, 500},
		{0, 1, 100}, // единственный узел прижат к верху
		{0, 0, 100},
	}
	for _, tt := range tests {
		if got := v.NodeY(tt.i, tt.n); got != tt.want {
			t.Errorf("NodeY(%d, %d) = %v, want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestNavRailViewHitNode(t *testing.T) {
	v := NewNavRailView(32, 100, 500, 5, color.RGBA{100, 255, 218, 255})
	tests := []struct {
		name   string
		mx, my float32
		want   int
		ok     bool
	}{
		{"first node centre", 32, 100, 0, true},
		{"middle node", 32, 300, 2, true},
		{"inside widened radius", 40, 300, 2, true},
		{"on widened radius edge", 32, 410, 3, true},
		{"just outside radius", 43, 300, 0, false},
		{"between nodes", 32, 150, 0, false},
		{"far from rail", 300, 300, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.HitNode(tt.mx, tt.my, 5)
			if got != tt.want || ok != tt.ok {
				t.Errorf("HitNode(%v, %v) = (%d, %v), want (%d, %v)", tt.mx, tt.my, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNavRailViewHitNodeEmpty(t *testing.T) {
	v := NewNavRailView(32, 100, 500, 5, color.RGBA{})
	if _, ok := v.HitNode(32, 100, 0); ok {
		t.Error("HitNode reported a hit with no nodes")
	}
}
