package editor

import "testing"

func TestXPForLevelKeypoints(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{0, 0},
		{10, 13500},
		{30, 140000},
		{50, 1150000},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPForLevelExtrapolation(t *testing.T) {
	// Below the first keypoint and above the last, the curve continues
	// linearly along the keypoint tangents.
	if got := XPForLevel(5); got != 13500-2250*5 {
		t.Errorf("XPForLevel(5) = %d, want %d", got, 13500-2250*5)
	}
	if got := XPForLevel(51); got != 1150000+88000 {
		t.Errorf("XPForLevel(51) = %d, want %d", got, 1150000+88000)
	}
}

func TestXPForLevelMonotonic(t *testing.T) {
	// Levels 1-4 all clamp to 0 XP, so the curve is only weakly
	// increasing there; from level 5 on it must be strict.
	prev := 0
	for level := 1; level <= MaxLevel; level++ {
		xp := XPForLevel(level)
		if xp < prev || (level >= 5 && xp <= prev) {
			t.Fatalf("curve not increasing at level %d: %d after %d", level, xp, prev)
		}
		prev = xp
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{13500, 10},
		{13499, 9},
		{140000, 30},
		{1150000, 50},
		{99999999, 50},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPInvertsCurve(t *testing.T) {
	// Levels 1-4 share 0 XP and cannot be distinguished from XP alone.
	for level := 5; level <= MaxLevel; level++ {
		if got := LevelForXP(XPForLevel(level)); got != level {
			t.Fatalf("LevelForXP(XPForLevel(%d)) = %d", level, got)
		}
	}
}
