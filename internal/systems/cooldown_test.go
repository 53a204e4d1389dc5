package systems

import (
	"testing"
	"time"
)

func TestCooldown(t *testing.T) {
	c := NewCooldown(500 * time.Millisecond)
	t0 := time.Unix(10, 0)

	if !c.Trigger(t0) {
		t.Fatal("first trigger must pass")
	}
	if c.Trigger(t0.Add(499 * time.Millisecond)) {
		t.Error("triggered inside the period")
	}
	if c.Last() != t0 {
		t.Error("refused trigger moved the stamp")
	}
	if !c.Trigger(t0.Add(500 * time.Millisecond)) {
		t.Error("period elapsed, trigger expected")
	}
}
