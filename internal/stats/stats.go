// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/moodcount/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
	minTrendWidth       = 10
	trendLabel          = "Trend  "
)

// Shares returns each category's fraction of the total count.
func Shares(counts model.Counts) [model.CategoryCount]float64 {
	var out [model.CategoryCount]float64
	total := counts.Total()
	if total == 0 {
		return out
	}
	for i, n := range counts {
		out[i] = float64(n) / float64(total)
	}
	return out
}

// Score maps a category onto a symmetric scale from +2 (Awesome) to -2 (Awful).
func Score(c model.Category) float64 {
	return float64(model.Normal - c)
}

// ScoreSeries converts events into their scores.
func ScoreSeries(events []model.Category) []float64 {
	out := make([]float64, len(events))
	for i, c := range events {
		out[i] = Score(c)
	}
	return out
}

// MeanScore returns the average score of the tallied events.
func MeanScore(counts model.Counts) float64 {
	total := counts.Total()
	if total == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range model.Categories {
		sum += Score(c) * float64(counts.Get(c))
	}
	return sum / float64(total)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Resample reduces values to at most width points by averaging buckets.
func Resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		start := i * len(values) / width
		end := (i + 1) * len(values) / width
		if end <= start {
			end = start + 1
		}
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderCounts prints the per-category tallies with their shares.
func RenderCounts(w io.Writer, counts model.Counts) error {
	shares := Shares(counts)
	headers := []string{"Mood", "Count", "Share"}
	rows := make([][]string, 0, model.CategoryCount+1)
	for i, c := range model.Categories {
		rows = append(rows, []string{
			c.String(),
			fmt.Sprintf("%d", counts.Get(c)),
			fmt.Sprintf("%.1f%%", shares[i]*100),
		})
	}
	rows = append(rows, []string{"Total", fmt.Sprintf("%d", counts.Total()), ""})
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Mean score: %+.2f\n", MeanScore(counts)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTrend prints a sparkline of the moving-average mood score. A
// totalWidth of zero sizes the line to the terminal.
func RenderTrend(w io.Writer, events []model.Category, window, totalWidth int) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No events recorded.")
		return err
	}
	if totalWidth <= 0 {
		totalWidth = terminalWidth(w)
	}
	width := TrendWidthFor(totalWidth)
	series := Resample(MovingAverage(ScoreSeries(events), window), width)
	if _, err := fmt.Fprintf(w, "%s%s\n", trendLabel, Sparkline(series)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// TrendWidthFor computes a sparkline width that fits after the label.
func TrendWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		return minTrendWidth
	}
	width := totalWidth - displayWidth(trendLabel)
	if width < minTrendWidth {
		width = minTrendWidth
	}
	return width
}

// RenderSaves prints the save journal.
func RenderSaves(w io.Writer, saves []model.SaveRecord) error {
	if len(saves) == 0 {
		_, err := fmt.Fprintln(w, "No saves recorded.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Saves"); err != nil {
		return err
	}
	headers := []string{"Saved", "Position"}
	for _, c := range model.Categories {
		headers = append(headers, c.String())
	}
	headers = append(headers, "Score")
	rightAlign := map[int]bool{}
	for i := 1; i < len(headers); i++ {
		rightAlign[i] = true
	}
	rows := make([][]string, 0, len(saves))
	for _, s := range saves {
		row := []string{
			s.SavedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d / %d", s.Cursor, s.Length),
		}
		for _, c := range model.Categories {
			row = append(row, fmt.Sprintf("%d", s.Counts.Get(c)))
		}
		row = append(row, fmt.Sprintf("%+.2f", MeanScore(s.Counts)))
		rows = append(rows, row)
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
