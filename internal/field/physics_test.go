package field

import (
	"math"
	"testing"

	"go-magnetic-field/internal/config"
)

const tolerance = 1e-9

func TestStepRepulsionMagnitude(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		density  float64
	}{
		{"close", 10, 10},
		{"mid", 75, 1},
		{"edge", 149.5, 30},
		{"dense", 1, 31},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// указатель справа-сверху под углом, частица в (100, 100)
			angle := 0.6
			px := 100 + tc.distance*math.Cos(angle)
			py := 100 + tc.distance*math.Sin(angle)
			particles := []Particle{{X: 100, Y: 100, BaseX: 100, BaseY: 100, Density: tc.density}}

			Step(particles, Pointer{X: px, Y: py})

			moveX := particles[0].X - 100
			moveY := particles[0].Y - 100
			got := math.Hypot(moveX, moveY)
			want := (config.MaxDistance - tc.distance) / config.MaxDistance * tc.density
			if math.Abs(got-want) > tolerance {
				t.Errorf("displacement = %v, want %v", got, want)
			}
			// сдвиг направлен от указателя к частице
			awayX, awayY := -math.Cos(angle), -math.Sin(angle)
			if math.Abs(moveX/got-awayX) > 1e-6 || math.Abs(moveY/got-awayY) > 1e-6 {
				t.Errorf("direction = (%v, %v), want (%v, %v)", moveX/got, moveY/got, awayX, awayY)
			}
		})
	}
}

func TestStepRestoringDecaysGeometrically(t *testing.T) {
	particles := []Particle{{X: 300, Y: 240, BaseX: 100, BaseY: 90, Density: 5}}
	pointer := NewPointer()

	prev := math.Hypot(particles[0].X-particles[0].BaseX, particles[0].Y-particles[0].BaseY)
	for frame := 0; frame < 200; frame++ {
		Step(particles, pointer)
		p := particles[0]
		gap := math.Hypot(p.X-p.BaseX, p.Y-p.BaseY)
		if math.Abs(gap-prev*49/50) > 1e-9*prev+1e-12 {
			t.Fatalf("frame %d: gap %v, want %v", frame, gap, prev*49/50)
		}
		if gap <= 0 {
			t.Fatalf("frame %d: particle reached its base exactly", frame)
		}
		prev = gap
	}
}

func TestStepAtRepulsionRadiusRestores(t *testing.T) {
	// ровно на MaxDistance отталкивания нет
	particles := []Particle{{X: 0, Y: 0, BaseX: 50, BaseY: 0, Density: 10}}
	Step(particles, Pointer{X: 0, Y: config.MaxDistance})

	if particles[0].X != 1 || particles[0].Y != 0 {
		t.Errorf("position = (%v, %v), want (1, 0)", particles[0].X, particles[0].Y)
	}
}

func TestStepLeavesStaticAttributes(t *testing.T) {
	f, _, _ := newTestField(800, 600)
	before := make([]Particle, len(f.Particles))
	copy(before, f.Particles)

	pointers := []Pointer{{X: 400, Y: 300}, {X: 10, Y: 590}, NewPointer(), {X: 790, Y: 5}}
	for i := 0; i < 120; i++ {
		f.Pointer = pointers[i%len(pointers)]
		f.Frame()
	}

	for i, p := range f.Particles {
		b := before[i]
		if p.Size != b.Size || p.Color != b.Color || p.Density != b.Density ||
			p.BaseX != b.BaseX || p.BaseY != b.BaseY || p.VX != b.VX || p.VY != b.VY {
			t.Fatalf("particle %d static attributes changed: %+v -> %+v", i, b, p)
		}
	}
}

func TestStepZeroDistanceDoesNotPanic(t *testing.T) {
	particles := []Particle{
		{X: 200, Y: 200, BaseX: 200, BaseY: 200, Density: 10},
		{X: 600, Y: 500, BaseX: 600, BaseY: 500, Density: 10},
	}
	pointer := Pointer{X: 200, Y: 200}

	Step(particles, pointer)

	if !math.IsNaN(particles[0].X) || !math.IsNaN(particles[0].Y) {
		t.Errorf("coincident particle = (%v, %v), want NaN", particles[0].X, particles[0].Y)
	}
	if particles[1].X != 600 || particles[1].Y != 500 {
		t.Errorf("distant particle moved to (%v, %v)", particles[1].X, particles[1].Y)
	}

	// последующие шаги тоже не паникуют
	for i := 0; i < 3; i++ {
		Step(particles, pointer)
	}
}
