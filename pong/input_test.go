package pong

import (
	"sync"
	"testing"
)

func TestPointerMoveClampsPlayer(t *testing.T) {
	const top = 100
	tests := []struct {
		name    string
		clientY float64
		wantY   float64
	}{
		{"center", top + 200, 160},
		{"past bottom", top + 450, 320},
		{"past top", top + 5, 0},
		{"above surface", top - 30, 0},
		{"exact bottom", top + 360, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			in := NewInputHandler()
			in.Attach(top)

			in.PointerMove(tt.clientY)
			in.Apply(w)
			if w.Player.Y != tt.wantY {
				t.Errorf("player y = %v, want %v", w.Player.Y, tt.wantY)
			}
		})
	}
}

func TestInputIgnoredBeforeAttach(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()

	in.PointerMove(10)
	if in.Touch([]TouchPoint{{ClientY: 10}}) {
		t.Errorf("touch consumed before attach")
	}
	in.Apply(w)
	if w.Player.Y != 160 {
		t.Errorf("player y = %v, want 160", w.Player.Y)
	}
}

func TestTouchUsesFirstPoint(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()
	in.Attach(0)

	if !in.Touch([]TouchPoint{{ClientX: 5, ClientY: 100}, {ClientX: 5, ClientY: 300}}) {
		t.Fatalf("touch not consumed")
	}
	in.Apply(w)
	if w.Player.Y != 60 {
		t.Errorf("player y = %v, want 60", w.Player.Y)
	}
	if w.Player.DY != -100 {
		t.Errorf("player dy = %v, want -100", w.Player.DY)
	}
}

func TestTouchWithoutPoints(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()
	in.Attach(0)

	if in.Touch(nil) {
		t.Errorf("empty touch consumed")
	}
	in.Apply(w)
	if w.Player.Y != 160 {
		t.Errorf("player y = %v, want 160", w.Player.Y)
	}
}

func TestApplyUsesLatestEvent(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()
	in.Attach(0)

	in.PointerMove(50)
	in.PointerMove(300)
	in.Apply(w)
	if w.Player.Y != 260 {
		t.Fatalf("player y = %v, want 260", w.Player.Y)
	}

	// nothing new arrived, paddle stays put
	w.Player.Y = 10
	in.Apply(w)
	if w.Player.Y != 10 {
		t.Errorf("player y = %v, want 10", w.Player.Y)
	}
}

func TestTickAppliesInputBeforePhysics(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()
	in.Attach(0)

	// ball is about to pass the player paddle near the top of the field
	w.Ball.X, w.Ball.Y = 25, 20
	w.Ball.DX, w.Ball.DY = -5, 0
	in.PointerMove(40)

	ev := w.Tick(in)
	if !ev.Has(PlayerHit) {
		t.Fatalf("expected the moved paddle to hit the ball, player y = %v", w.Player.Y)
	}
}

func TestConcurrentEvents(t *testing.T) {
	w := newTestWorld()
	in := NewInputHandler()
	in.Attach(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(y float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				in.PointerMove(y)
			}
		}(float64(i * 50))
	}
	for i := 0; i < 100; i++ {
		w.Tick(in)
		if w.Player.Y < 0 || w.Player.Y > 320 {
			t.Fatalf("player y = %v out of bounds", w.Player.Y)
		}
	}
	wg.Wait()
}

func TestApplyNeedsField(t *testing.T) {
	w := newTestWorld()
	w.Field = Field{}
	in := NewInputHandler()
	in.Attach(0)

	in.PointerMove(300)
	in.Apply(w)
	if w.Player.Y != 160 {
		t.Errorf("player y = %v, want 160", w.Player.Y)
	}
}
