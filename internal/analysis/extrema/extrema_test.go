package extrema

import (
	"errors"
	"sort"
	"testing"
	"time"

	"StockLens/internal/domain/models"
)

func mkSeries(lows, highs []float64) models.Series {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(models.Series, len(lows))
	for i := range lows {
		s[i] = models.Bar{
			Timestamp: start.AddDate(0, 0, i),
			Open:      (lows[i] + highs[i]) / 2,
			High:      highs[i],
			Low:       lows[i],
			Close:     (lows[i] + highs[i]) / 2,
			Volume:    100,
		}
	}
	return s
}

func TestLevelsSelectionRule(t *testing.T) {
	// Sawtooth with five distinct troughs and peaks so more than three
	// unique candidates exist on each side.
	var lows, highs []float64
	troughs := []float64{10, 12, 8, 14, 11}
	for _, tr := range troughs {
		for d := 5.0; d >= 1; d-- {
			lows = append(lows, tr+d)
			highs = append(highs, tr+d+20)
		}
		for d := 0.0; d < 5; d++ {
			lows = append(lows, tr+d)
			highs = append(highs, tr+d+20)
		}
	}
	s := mkSeries(lows, highs)

	window := 5
	set := Levels(s, window)

	// Recompute candidates the straightforward way and apply the
	// documented selection: support keeps the 3 highest candidates,
	// resistance the 3 lowest, each ascending.
	back := (window - 1) / 2
	supSeen := map[float64]struct{}{}
	resSeen := map[float64]struct{}{}
	for i := range s {
		lo := i - back
		hi := lo + window
		if lo < 0 || hi > len(s) {
			continue
		}
		minL, maxH := s[lo].Low, s[lo].High
		for _, b := range s[lo+1 : hi] {
			if b.Low < minL {
				minL = b.Low
			}
			if b.High > maxH {
				maxH = b.High
			}
		}
		if s[i].Low == minL {
			supSeen[s[i].Low] = struct{}{}
		}
		if s[i].High == maxH {
			resSeen[s[i].High] = struct{}{}
		}
	}
	var sup, res []float64
	for v := range supSeen {
		sup = append(sup, v)
	}
	for v := range resSeen {
		res = append(res, v)
	}
	sort.Float64s(sup)
	sort.Float64s(res)
	wantSup := sup[len(sup)-3:]
	wantRes := res[:3]

	if len(set.Support) != 3 || len(set.Resistance) != 3 {
		t.Fatalf("expected 3 levels each, got %d/%d", len(set.Support), len(set.Resistance))
	}
	for i := range wantSup {
		if set.Support[i] != wantSup[i] {
			t.Fatalf("support[%d]: got %v want %v", i, set.Support[i], wantSup[i])
		}
	}
	for i := range wantRes {
		if set.Resistance[i] != wantRes[i] {
			t.Fatalf("resistance[%d]: got %v want %v", i, set.Resistance[i], wantRes[i])
		}
	}

	// Each set must be ascending; no ordering between the two sets is
	// implied by the selection rule.
	if !sort.Float64sAreSorted(set.Support) || !sort.Float64sAreSorted(set.Resistance) {
		t.Fatal("level sets must be ascending")
	}
}

func TestLevelsShortSeries(t *testing.T) {
	s := mkSeries([]float64{1, 2}, []float64{3, 4})
	set := Levels(s, 20)
	if len(set.Support) != 0 || len(set.Resistance) != 0 {
		t.Fatal("expected empty level set for short series")
	}
}

func TestOutliersZScore(t *testing.T) {
	lows := make([]float64, 30)
	highs := make([]float64, 30)
	for i := range lows {
		lows[i] = 99
		highs[i] = 101
	}
	s := mkSeries(lows, highs)
	// One violent close far outside the pack.
	s[17].Close = 500

	out, err := Outliers(s, models.ColumnClose, 3.0)
	if err != nil {
		t.Fatalf("outliers: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected exactly one outlier, got %d", len(out))
	}
	if !out[0].Equal(s[17].Timestamp) {
		t.Fatalf("outlier at wrong timestamp: %v", out[0])
	}
}

func TestOutliersZeroStd(t *testing.T) {
	lows := []float64{9, 9, 9, 9}
	highs := []float64{11, 11, 11, 11}
	s := mkSeries(lows, highs)

	out, err := Outliers(s, models.ColumnClose, 3.0)
	if err != nil {
		t.Fatalf("outliers: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no outliers for constant column, got %d", len(out))
	}
}

func TestOutliersInvalidColumn(t *testing.T) {
	s := mkSeries([]float64{1}, []float64{2})
	_, err := Outliers(s, "vwap", 3.0)
	var colErr *models.InvalidColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected InvalidColumnError, got %v", err)
	}
	if colErr.Column != "vwap" {
		t.Fatalf("expected column name in error, got %q", colErr.Column)
	}
}
