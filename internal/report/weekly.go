package report

import (
	"fmt"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

const (
	habitBoxGraphH = 25
	habitBoxGap    = 20
)

// renderWeeklySection draws the closing "Weekly Insights & Performance"
// pages: per-habit weekly bar charts over Monday-aligned chunks, then the
// aggregate weekly sleep chart.
func (r *Renderer) renderWeeklySection(days []time.Time) {
	const title = "Weekly Insights & Performance"

	r.canvas.AddPage()
	r.header(title)

	weeks := domain.MondayAlignedChunks(days)

	startY := float64(contentTop)
	r.canvas.Text(marginX, startY, "Individual Habit Weekly Performance",
		TextStyle{Size: 12, Color: colorHeading, Bold: true})
	startY += 10

	colWidth := (r.canvas.PageWidth()-2*marginX)/2 - 10

	for idx, habit := range r.habits {
		col := idx % 2
		row := idx / 2

		y := startY + float64(row)*(habitBoxGraphH+habitBoxGap)
		if y+habitBoxGraphH > r.canvas.PageHeight()-20 {
			r.canvas.AddPage()
			r.header(title + " (Continued)")
			// Re-anchor so this row lands at the content top; later rows
			// keep their relative offsets.
			startY = contentTop - float64(row)*(habitBoxGraphH+habitBoxGap)
			y = contentTop
		}
		x := marginX + float64(col)*(colWidth+20)

		r.renderHabitBox(habit, idx, weeks, x, y, colWidth)
	}

	r.renderWeeklySleep(weeks, startY)
}

func (r *Renderer) renderHabitBox(habit *domain.Habit, idx int, weeks []domain.WeekBucket, x, y, colWidth float64) {
	r.canvas.RoundedRect(x, y, colWidth, habitBoxGraphH+10, 2, colorStripe, colorGrid)
	r.canvas.Text(x+4, y+6, habit.Name, TextStyle{Size: 10, Color: colorBoxTitle})

	barAreaW := colWidth - 10
	barAreaH := float64(habitBoxGraphH - 5)
	barX := x + 5
	barY := y + 10
	barW := barAreaW / float64(len(weeks))

	barColor := ParseHexColor(domain.ColorFor(idx))

	for wIdx, week := range weeks {
		completed := 0
		total := 0
		for _, day := range week.Days() {
			total++
			if r.completions.Completed(habit.ID, domain.DateKey(day)) {
				completed++
			}
		}

		pct := 0.0
		if total > 0 {
			pct = float64(completed) / float64(total)
		}

		h := pct * barAreaH
		bx := barX + float64(wIdx)*barW + barW*0.1
		bw := barW * 0.8

		r.canvas.FillRect(bx, barY+barAreaH-h, bw, h, barColor)

		r.canvas.Text(bx+bw/2, barY+barAreaH+3, fmt.Sprintf("W%d", wIdx+1),
			TextStyle{Size: 6, Color: colorTick, Align: AlignCenter})
		if pct > 0 {
			r.canvas.Text(bx+bw/2, barY+barAreaH-h-1, fmt.Sprintf("%d%%", roundPct(pct)),
				TextStyle{Size: 6, Color: colorTick, Align: AlignCenter})
		}
	}
}

func (r *Renderer) renderWeeklySleep(weeks []domain.WeekBucket, startY float64) {
	rows := (len(r.habits) + 1) / 2
	sleepY := startY + float64(rows)*(habitBoxGraphH+habitBoxGap) + 10

	if sleepY+graphHeight > r.canvas.PageHeight()-bottomPad {
		r.canvas.AddPage()
		r.header("Weekly Insights & Performance (Continued)")
		sleepY = contentTop
	}

	r.canvas.Text(marginX, sleepY, "Weekly Sleep Analysis (Average Hours)",
		TextStyle{Size: 12, Color: colorHeading, Bold: true})

	graphW := r.canvas.PageWidth() - 2*marginX
	axisTop := sleepY + 5

	r.canvas.Line(marginX, axisTop, marginX, axisTop+graphHeight, 0.3, colorAxis)
	r.canvas.Line(marginX, axisTop+graphHeight, marginX+graphW, axisTop+graphHeight, 0.3, colorAxis)

	barW := graphW / float64(len(weeks))

	for wIdx, week := range weeks {
		avgHours := domain.AverageSleepHours(r.sleep, week.Days())

		h := clamp(avgHours, 0, sleepAxisMaxHours) / sleepAxisMaxHours * graphHeight
		bx := marginX + float64(wIdx)*barW + barW*0.2
		bw := barW * 0.6

		r.canvas.FillRect(bx, axisTop+graphHeight-h, bw, h, colorSleep)

		r.canvas.Text(bx+bw/2, axisTop+graphHeight+5, fmt.Sprintf("Week %d", wIdx+1),
			TextStyle{Size: 8, Color: colorHeading, Align: AlignCenter})
		r.canvas.Text(bx+bw/2, axisTop+graphHeight-h-2, fmt.Sprintf("%.1fh", avgHours),
			TextStyle{Size: 8, Color: colorHeading, Align: AlignCenter})
	}
}

func roundPct(fraction float64) int {
	return int(fraction*100 + 0.5)
}
