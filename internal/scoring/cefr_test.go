package scoring

import (
	"math"
	"testing"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "C2"},
		{90, "C2"},
		{89.9, "C1"},
		{80, "C1"},
		{72, "B2"},
		{70, "B2"},
		{69.9, "B1"},
		{55, "B1"},
		{40, "A2"},
		{39.9, "A1"},
		{0, "A1"},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.percentage).Level; got != tt.want {
			t.Errorf("LevelFor(%.1f) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestBandsDescending(t *testing.T) {
	bs := Bands()
	if len(bs) != 6 {
		t.Fatalf("len(Bands()) = %d, want 6", len(bs))
	}
	for i := 1; i < len(bs); i++ {
		if bs[i].MinPercentage >= bs[i-1].MinPercentage {
			t.Errorf("thresholds not strictly descending at %s", bs[i].Level)
		}
	}
	if bs[len(bs)-1].MinPercentage != 0 {
		t.Error("lowest band must floor at 0")
	}
}

func TestWritingOverall(t *testing.T) {
	score, pct := WritingOverall(7, 6, 6.5)
	if score != 6.5 {
		t.Errorf("score = %f, want 6.5", score)
	}
	if math.Abs(pct-72.222222) > 0.001 {
		t.Errorf("percentage = %f, want ~72.22", pct)
	}

	// The essay carries twice the weight of each short task.
	essayOnly, _ := WritingOverall(0, 0, 9)
	taskOnly, _ := WritingOverall(9, 0, 0)
	if essayOnly != 4.5 || taskOnly != 2.25 {
		t.Errorf("weighting wrong: essayOnly = %f, taskOnly = %f", essayOnly, taskOnly)
	}
}

func TestWritingOverallAllZero(t *testing.T) {
	score, pct := WritingOverall(0, 0, 0)
	if score != 0 || pct != 0 {
		t.Errorf("got (%f, %f), want exact zeros", score, pct)
	}
}

func TestSessionOverall(t *testing.T) {
	r := SessionOverall(80, 70, 72.5, DefaultSessionWeights)
	// 80*0.3 + 70*0.3 + 72.5*0.4 = 74
	if math.Abs(r.OverallPercentage-74) > 0.001 {
		t.Errorf("OverallPercentage = %f, want 74", r.OverallPercentage)
	}
	if r.CEFRLevel != "B2" {
		t.Errorf("CEFRLevel = %q, want B2", r.CEFRLevel)
	}
	if r.LevelDescription == "" {
		t.Error("expected a level description")
	}

	zero := SessionOverall(0, 0, 0, DefaultSessionWeights)
	if zero.OverallPercentage != 0 || zero.CEFRLevel != "A1" {
		t.Errorf("zero session = %+v", zero)
	}
}
