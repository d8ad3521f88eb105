package common

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{name: "start", a: 0, b: 10, t: 0, want: 0},
		{name: "end", a: 0, b: 10, t: 1, want: 10},
		{name: "middle", a: 0, b: 10, t: 0.5, want: 5},
		{name: "descending", a: 10, b: 0, t: 0.25, want: 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); got != tt.want {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp(-5, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp(15, 0, 10) = %v, want 10", got)
	}
}

func TestApproachNeverOvershoots(t *testing.T) {
	if got := Approach(0, 1, 0.3); got != 0.3 {
		t.Fatalf("Approach(0, 1, 0.3) = %v, want 0.3", got)
	}
	if got := Approach(0.9, 1, 0.3); got != 1 {
		t.Fatalf("Approach(0.9, 1, 0.3) = %v, want exactly 1", got)
	}
	if got := Approach(1, 0, 0.4); got != 0.6 {
		t.Fatalf("Approach(1, 0, 0.4) = %v, want 0.6", got)
	}
	if got := Approach(0.1, 0, 0.4); got != 0 {
		t.Fatalf("Approach(0.1, 0, 0.4) = %v, want exactly 0", got)
	}
}
