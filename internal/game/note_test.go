package game

import (
	"errors"
	"testing"
	"time"
)

func TestNoteLifecycle(t *testing.T) {
	n := Note{ID: 7}
	if _, ok := n.HitTime(); ok {
		t.Fatal("pending note has a hit time")
	}
	if err := n.Hit(time.Second, Perfect); !errors.Is(err, ErrTransition) {
		t.Fatalf("hit before activation: got %v", err)
	}
	if err := n.Activate(); nil != err {
		t.Fatal(err)
	}
	if err := n.Activate(); !errors.Is(err, ErrTransition) {
		t.Fatalf("double activation: got %v", err)
	}
	if err := n.Hit(2*time.Second, Good); nil != err {
		t.Fatal(err)
	}
	if at, ok := n.HitTime(); !ok || at != 2*time.Second {
		t.Errorf("hit time = %v %v", at, ok)
	}
	if acc, ok := n.Accuracy(); !ok || acc != Good {
		t.Errorf("accuracy = %v %v", acc, ok)
	}
}

func TestTerminalExclusivity(t *testing.T) {
	for _, first := range []State{Hit, Missed} {
		n := Note{}
		n.Activate()
		if first == Hit {
			n.Hit(time.Second, Bad)
		} else {
			n.Miss()
		}
		if err := n.Miss(); nil == err {
			t.Errorf("%v note accepted a miss", first)
		}
		if err := n.Hit(3*time.Second, Perfect); nil == err {
			t.Errorf("%v note accepted a hit", first)
		}
		if n.IsHit() && n.IsMissed() {
			t.Errorf("note both hit and missed")
		}
		if n.State() != first {
			t.Errorf("state changed from %v to %v", first, n.State())
		}
		if at, _ := n.HitTime(); first == Hit && at != time.Second {
			t.Errorf("hit time rewritten to %v", at)
		}
	}
}

func TestDirections(t *testing.T) {
	for d := Up; d < Any; d++ {
		v, ok := d.Direction()
		if !ok {
			t.Fatalf("%v has no direction", d)
		}
		if l := v.Len(); l < 0.9999 || l > 1.0001 {
			t.Errorf("%v is not a unit vector: %v", d, l)
		}
	}
	if _, ok := Any.Direction(); ok {
		t.Error("any should have no direction")
	}
}

func TestPosition(t *testing.T) {
	n := Note{Spec: Spec{LineIndex: 3, LineLayer: 2}}
	p := n.Position(-4)
	if p.X() != LaneX(3) || p.Y() != LayerY(2) || p.Z() != -4 {
		t.Errorf("position = %v", p)
	}
}
