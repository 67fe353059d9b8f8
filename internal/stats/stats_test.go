package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/moodcount/internal/model"
)

func TestScoreScale(t *testing.T) {
	want := map[model.Category]float64{
		model.Awesome: 2,
		model.Good:    1,
		model.Normal:  0,
		model.Bad:     -1,
		model.Awful:   -2,
	}
	for c, w := range want {
		if got := Score(c); got != w {
			t.Fatalf("Score(%s): got %v want %v", c, got, w)
		}
	}
}

func TestSharesAndMeanScore(t *testing.T) {
	counts := model.Counts{2, 1, 0, 1, 0}
	shares := Shares(counts)
	if shares[0] != 0.5 || shares[1] != 0.25 || shares[2] != 0 {
		t.Fatalf("unexpected shares: %v", shares)
	}
	if got := MeanScore(counts); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected mean score 1.0, got %v", got)
	}
	if Shares(model.Counts{}) != ([model.CategoryCount]float64{}) {
		t.Fatalf("expected zero shares for empty counts")
	}
	if MeanScore(model.Counts{}) != 0 {
		t.Fatalf("expected zero mean for empty counts")
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 0, -2, 2}, 2)
	want := []float64{2, 1, -1, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestResample(t *testing.T) {
	got := Resample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Fatalf("unexpected resample: %v", got)
	}
	if got := Resample([]float64{1, 2}, 10); len(got) != 2 {
		t.Fatalf("expected short series unchanged, got %v", got)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{-2, 2}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
}

func TestRenderCounts(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCounts(&buf, model.Counts{1, 2, 0, 1, 0}); err != nil {
		t.Fatalf("render counts: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Awesome", "Good", "50.0%", "Total", "Mean score: +0.75"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderTrend(t *testing.T) {
	var buf bytes.Buffer
	events := []model.Category{model.Awful, model.Bad, model.Normal, model.Good, model.Awesome}
	if err := RenderTrend(&buf, events, 1, 40); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	if line != "Trend    :+#@" {
		t.Fatalf("unexpected trend line %q", line)
	}

	buf.Reset()
	if err := RenderTrend(&buf, nil, 3, 40); err != nil {
		t.Fatalf("render trend: %v", err)
	}
	if !strings.Contains(buf.String(), "No events recorded.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}

func TestTrendWidthFor(t *testing.T) {
	if got := TrendWidthFor(80); got != 73 {
		t.Fatalf("expected 73, got %d", got)
	}
	if got := TrendWidthFor(5); got != minTrendWidth {
		t.Fatalf("expected minimum width, got %d", got)
	}
}

func TestRenderSaves(t *testing.T) {
	var buf bytes.Buffer
	saves := []model.SaveRecord{{
		SavedAt: time.Date(2024, 1, 2, 3, 4, 0, 0, time.Local),
		Cursor:  3,
		Length:  4,
		Counts:  model.Counts{1, 1, 1, 0, 0},
	}}
	if err := RenderSaves(&buf, saves); err != nil {
		t.Fatalf("render saves: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Saves", "2024-01-02 03:04", "3 / 4", "+1.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderSaves(&buf, nil); err != nil {
		t.Fatalf("render saves: %v", err)
	}
	if !strings.Contains(buf.String(), "No saves recorded.") {
		t.Fatalf("expected empty notice, got %q", buf.String())
	}
}
