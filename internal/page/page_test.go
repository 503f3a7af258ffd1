package page

import (
	"math"
	"testing"
	"time"
)

func TestTypewriterCycle(t *testing.T) {
	w := NewTypewriter([]string{"Go", "Hi"})
	want := []struct {
		text  string
		delay time.Duration
	}{
		{"G", 100 * time.Millisecond},
		{"Go", 2000 * time.Millisecond},
		{"H", 100 * time.Millisecond},
		{"Hi", 2000 * time.Millisecond},
		{"G", 100 * time.Millisecond}, // снова первое слово
	}
	for i, step := range want {
		text, delay := w.Next()
		if text != step.text || delay != step.delay {
			t.Errorf("step %d = (%q, %v), want (%q, %v)", i, text, delay, step.text, step.delay)
		}
	}
}

func TestTypewriterRunes(t *testing.T) {
	w := NewTypewriter([]string{"Ёж"})
	if text, _ := w.Next(); text != "Ё" {
		t.Errorf("first rune = %q", text)
	}
}

func TestTickerAdvance(t *testing.T) {
	tk := NewTicker(NewTypewriter([]string{"abc"}))
	if tk.Text() != "a" {
		t.Fatalf("initial text = %q", tk.Text())
	}
	if got := tk.Advance(99 * time.Millisecond); got != "a" {
		t.Errorf("before delay = %q", got)
	}
	if got := tk.Advance(time.Millisecond); got != "ab" {
		t.Errorf("after delay = %q", got)
	}
	if got := tk.Advance(100 * time.Millisecond); got != "abc" {
		t.Errorf("full word = %q", got)
	}
	if got := tk.Advance(1999 * time.Millisecond); got != "abc" {
		t.Errorf("during pause = %q", got)
	}
	if got := tk.Advance(time.Millisecond); got != "a" {
		t.Errorf("after pause = %q", got)
	}
}

func TestRevealIsSticky(t *testing.T) {
	var r Reveal
	if op, dy := r.Style(); op != 0 || dy != 20 {
		t.Errorf("hidden style = (%v, %v)", op, dy)
	}
	r.Observe(0.19)
	if r.Visible {
		t.Fatal("revealed below threshold")
	}
	r.Observe(0.2)
	r.Observe(0)
	if !r.Visible {
		t.Fatal("reveal did not stick")
	}
	if op, dy := r.Style(); op != 1 || dy != 0 {
		t.Errorf("visible style = (%v, %v)", op, dy)
	}
}

func TestVisibleRatio(t *testing.T) {
	tests := []struct {
		top, bottom, vh, want float64
	}{
		{0, 100, 800, 1},
		{700, 900, 800, 0.5},
		{-50, 50, 800, 0.5},
		{900, 1000, 800, 0},
		{10, 10, 800, 0},
	}
	for _, tc := range tests {
		if got := VisibleRatio(tc.top, tc.bottom, tc.vh); got != tc.want {
			t.Errorf("VisibleRatio(%v, %v, %v) = %v, want %v", tc.top, tc.bottom, tc.vh, got, tc.want)
		}
	}
}

func TestNavRail(t *testing.T) {
	sections := []Section{{"hero", 0}, {"about", 800}, {"skills", 1600}, {"contact", 2400}}
	n := NewNavRail([]string{"#hero", "#about", "#skills", "#contact"})

	tests := []struct {
		scrollY  float64
		current  string
		index    int
		progress float64
	}{
		{0, "hero", 0, 0},
		{499, "hero", 0, 0},
		{500, "about", 1, 100.0 / 3},
		{1300, "skills", 2, 200.0 / 3},
		{5000, "contact", 3, 100},
	}
	for _, tc := range tests {
		n.Update(tc.scrollY, sections)
		if n.Current != tc.current || n.ActiveIndex != tc.index || math.Abs(n.Progress-tc.progress) > 1e-9 {
			t.Errorf("scrollY %v: (%q, %d, %v), want (%q, %d, %v)",
				tc.scrollY, n.Current, n.ActiveIndex, n.Progress, tc.current, tc.index, tc.progress)
		}
		if !n.IsActive(tc.index) {
			t.Errorf("scrollY %v: node %d not active", tc.scrollY, tc.index)
		}
	}
}

func TestNavRailUnknownSection(t *testing.T) {
	n := NewNavRail([]string{"#a", "#b"})
	n.Update(0, []Section{{"zzz", 0}})
	if n.ActiveIndex != 0 || n.Progress != 0 || n.IsActive(0) {
		t.Errorf("unknown section: index %d progress %v", n.ActiveIndex, n.Progress)
	}
}

func TestBadgeInView(t *testing.T) {
	tests := []struct {
		top, bottom float64
		want        bool
	}{
		{559, 1400, true},  // верх чуть выше 70%
		{561, 1400, false}, // верх ниже 70%
		{-600, 241, true},  // низ чуть ниже 30%
		{-600, 239, false},
		{100, 700, true},
	}
	for _, tc := range tests {
		if got := BadgeInView(tc.top, tc.bottom, 800); got != tc.want {
			t.Errorf("BadgeInView(%v, %v) = %v, want %v", tc.top, tc.bottom, got, tc.want)
		}
	}
}

func TestScroller(t *testing.T) {
	s := NewScroller(1000)
	s.ScrollTo(5000)
	if s.Target() != 1000 {
		t.Fatalf("target = %v, want clamp to 1000", s.Target())
	}
	steps := 0
	for s.Step() {
		steps++
		if steps > 500 {
			t.Fatal("scroller never settled")
		}
	}
	if s.Y != 1000 {
		t.Errorf("settled at %v", s.Y)
	}
	if s.Step() {
		t.Error("settled scroller reported movement")
	}

	s.ScrollBy(-300)
	s.Step()
	if s.Y >= 1000 || s.Y <= 700 {
		t.Errorf("first eased step = %v", s.Y)
	}

	s.SetMax(200)
	if s.Y > 200 || s.Target() > 200 {
		t.Errorf("SetMax did not clamp: y %v target %v", s.Y, s.Target())
	}
}

func TestAnchorID(t *testing.T) {
	tests := []struct {
		href string
		id   string
		ok   bool
	}{
		{"#about", "about", true},
		{"#", "", false},
		{"", "", false},
		{"https://example.com/#x", "", false},
	}
	for _, tt := range tests {
		id, ok := AnchorID(tt.href)
		if id != tt.id || ok != tt.ok {
			t.Errorf("AnchorID(%q) = (%q, %v), want (%q, %v)", tt.href, id, ok, tt.id, tt.ok)
		}
	}
}
