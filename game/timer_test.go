package game

import "testing"

func TestTickTimerFiresExactlyOnce(t *testing.T) {
	var timer TickTimer
	timer.Arm(0.1)

	if !timer.Armed() {
		t.Fatal("Armed() = false after Arm")
	}
	if timer.Tick(0.05) {
		t.Fatal("fired early")
	}
	if !timer.Tick(0.05) {
		t.Fatal("did not fire on the elapsing tick")
	}
	if timer.Armed() {
		t.Fatal("still armed after firing")
	}
	for i := 0; i < 5; i++ {
		if timer.Tick(1) {
			t.Fatalf("fired again on tick %d", i)
		}
	}
}

func TestTickTimerUnarmedNeverFires(t *testing.T) {
	var timer TickTimer
	for i := 0; i < 5; i++ {
		if timer.Tick(1) {
			t.Fatal("zero value timer fired")
		}
	}
}

func TestTickTimerCancel(t *testing.T) {
	var timer TickTimer
	timer.Arm(0.1)
	timer.Cancel()

	if timer.Armed() {
		t.Fatal("Armed() = true after Cancel")
	}
	if timer.Tick(1) {
		t.Fatal("fired after Cancel")
	}
}

func TestTickTimerRearmReplacesCountdown(t *testing.T) {
	var timer TickTimer
	timer.Arm(1.0)
	timer.Tick(0.5)
	timer.Arm(0.2)

	if timer.Tick(0.1) {
		t.Fatal("rearmed timer kept the old countdown")
	}
	if !timer.Tick(0.1) {
		t.Fatal("rearmed timer did not fire on the new countdown")
	}
}

func TestTickTimerZeroDurationFiresNextTick(t *testing.T) {
	var timer TickTimer
	timer.Arm(0)
	if !timer.Tick(tick) {
		t.Fatal("zero duration timer did not fire on the next tick")
	}
}
