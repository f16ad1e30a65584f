package effects

import (
	"math"
	"testing"

	"git.lost.host/meutraa/sabers/internal/game"
)

func TestImpactOrdering(t *testing.T) {
	if !(Impact(game.Perfect) > Impact(game.Good) && Impact(game.Good) > Impact(game.Bad)) {
		t.Errorf("impacts not ordered: %v %v %v", Impact(game.Perfect), Impact(game.Good), Impact(game.Bad))
	}
}

func TestDecayResets(t *testing.T) {
	f := New(1)
	f.OnNoteHit(nil, game.Perfect)
	prev := f.Impact
	frames := 0
	for f.Active() {
		f.Step()
		if f.Impact > prev {
			t.Fatal("impact grew while decaying")
		}
		if f.Impact != 0 && f.Impact < f.Epsilon {
			t.Fatalf("impact %v below epsilon not reset", f.Impact)
		}
		prev = f.Impact
		frames++
		if frames > 1000 {
			t.Fatal("feedback never settled")
		}
	}
	// 0.9^n < 0.001 first holds at n = 66
	if frames != 66 {
		t.Errorf("settled after %d frames", frames)
	}
}

func TestWeakerHitKeepsStrongerImpact(t *testing.T) {
	f := New(1)
	f.OnNoteHit(nil, game.Perfect)
	f.OnNoteHit(nil, game.Bad)
	if f.Impact != Impact(game.Perfect) {
		t.Errorf("impact = %v", f.Impact)
	}
}

func TestShakeBounded(t *testing.T) {
	f := New(42)
	if x, y := f.Shake(); x != 0 || y != 0 {
		t.Fatal("shake without impact")
	}
	f.OnNoteHit(nil, game.Good)
	limit := Impact(game.Good) * f.ShakeScale
	for i := 0; i < 100; i++ {
		x, y := f.Shake()
		if math.Abs(x) > limit || math.Abs(y) > limit {
			t.Fatalf("shake (%v, %v) beyond %v", x, y, limit)
		}
	}
}

func TestLightAndFlash(t *testing.T) {
	f := New(1)
	if f.Light(0.3) != 0.3 {
		t.Error("light changed without a pulse")
	}
	f.OnNoteHit(nil, game.Perfect)
	if f.Light(0.3) != 1 {
		t.Errorf("full pulse light = %v", f.Light(0.3))
	}
	f.OnNoteMiss(nil)
	if f.Flash != 1 {
		t.Error("miss did not flash")
	}
}
