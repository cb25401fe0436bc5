package report

import (
	"fmt"
	"strconv"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// Page geometry shared by every section, in millimeters.
const (
	marginX     = 14
	bannerH     = 22
	contentTop  = 32
	bottomPad   = 10
	graphHeight = 40
	graphLeft   = 20

	tableRowH  = 7
	nameColW   = 40
	glyphCheck = 0.6
	glyphCross = 0.5

	sleepAxisMaxHours = 12
)

// Renderer paginates a multi-page habit report onto an abstract canvas. It
// recomputes every aggregate from the raw maps; the inputs are read-only
// snapshots.
type Renderer struct {
	canvas      Canvas
	habits      []*domain.Habit
	completions domain.CompletionMap
	sleep       domain.SleepMap
	rng         domain.DateRange

	firstPage bool
}

func NewRenderer(canvas Canvas, habits []*domain.Habit, completions domain.CompletionMap, sleep domain.SleepMap, rng domain.DateRange) *Renderer {
	return &Renderer{
		canvas:      canvas,
		habits:      habits,
		completions: completions,
		sleep:       sleep,
		rng:         rng,
		firstPage:   true,
	}
}

// Filename embeds the literal date keys of the exported range.
func Filename(rng domain.DateRange) string {
	return fmt.Sprintf("HabitFlow_Export_%s_to_%s.pdf", domain.DateKey(rng.Start), domain.DateKey(rng.End))
}

// Render draws the full report: one or more pages per calendar month chunk,
// then the weekly performance section.
func (r *Renderer) Render() {
	days := r.rng.Days()
	chunks := domain.MonthChunks(days)

	for _, chunk := range chunks {
		r.newPage("Monthly Report: " + chunk.Label)
		r.renderMonth(chunk)
	}

	r.renderWeeklySection(days)
}

// newPage starts a page (reusing the canvas's initial blank page for the
// first one) and draws the banner.
func (r *Renderer) newPage(title string) {
	if !r.firstPage {
		r.canvas.AddPage()
	}
	r.firstPage = false
	r.header(title)
}

func (r *Renderer) header(title string) {
	w := r.canvas.PageWidth()
	r.canvas.FillRect(0, 0, w, bannerH, colorBanner)
	r.canvas.Text(marginX, 14, title, TextStyle{Size: 16, Color: colorWhite, Bold: true})

	period := fmt.Sprintf("Period: %s - %s", domain.DateKey(r.rng.Start), domain.DateKey(r.rng.End))
	r.canvas.Text(w-marginX, 14, period, TextStyle{Size: 10, Color: colorBannerSub, Align: AlignRight})
}

func (r *Renderer) renderMonth(chunk domain.MonthChunk) {
	tableEnd := r.renderMatrix(chunk)

	graphY := tableEnd + 15
	r.renderTrendGraph(chunk, graphY)

	sleepY := graphY + graphHeight + 15
	if sleepY+graphHeight > r.canvas.PageHeight()-bottomPad {
		r.newPage("Monthly Report: " + chunk.Label + " (Continued)")
		sleepY = contentTop
	}
	r.renderSleepGraph(chunk, sleepY)
}

// renderMatrix draws the habit-by-day table and returns the y coordinate of
// its bottom edge.
func (r *Renderer) renderMatrix(chunk domain.MonthChunk) float64 {
	w := r.canvas.PageWidth()
	dayColW := (w - 2*marginX - nameColW) / float64(len(chunk.Dates))

	y := r.matrixHeader(chunk, contentTop, dayColW)

	for i, habit := range r.habits {
		if y+tableRowH > r.canvas.PageHeight()-bottomPad {
			r.newPage("Monthly Report: " + chunk.Label + " (Continued)")
			y = r.matrixHeader(chunk, contentTop, dayColW)
		}

		if i%2 == 1 {
			r.canvas.FillRect(marginX+nameColW, y, dayColW*float64(len(chunk.Dates)), tableRowH, colorStripe)
		}
		r.canvas.FillRect(marginX, y, nameColW, tableRowH, colorStripe)
		r.canvas.Text(marginX+1.5, y+tableRowH-2.2, habit.Name, TextStyle{Size: 8, Color: colorHeading, Bold: true})

		for j, date := range chunk.Dates {
			cx := marginX + nameColW + float64(j)*dayColW + dayColW/2
			cy := y + tableRowH/2
			if r.completions.Completed(habit.ID, domain.DateKey(date)) {
				r.drawCheck(cx, cy)
			} else {
				r.drawCross(cx, cy)
			}
		}

		r.gridRow(y, dayColW, len(chunk.Dates))
		y += tableRowH
	}

	return y
}

// matrixHeader draws the column header row and returns the y where body rows
// start.
func (r *Renderer) matrixHeader(chunk domain.MonthChunk, top, dayColW float64) float64 {
	r.canvas.FillRect(marginX, top, nameColW+dayColW*float64(len(chunk.Dates)), tableRowH, colorBanner)
	r.canvas.Text(marginX+1.5, top+tableRowH-2.2, "Habit", TextStyle{Size: 8, Color: colorWhite, Bold: true})

	for j, date := range chunk.Dates {
		cx := marginX + nameColW + float64(j)*dayColW + dayColW/2
		r.canvas.Text(cx, top+tableRowH-2.2, strconv.Itoa(date.Day()),
			TextStyle{Size: 8, Color: colorWhite, Bold: true, Align: AlignCenter})
	}

	return top + tableRowH
}

func (r *Renderer) gridRow(y, dayColW float64, cols int) {
	right := marginX + nameColW + dayColW*float64(cols)
	r.canvas.Line(marginX, y+tableRowH, right, y+tableRowH, 0.1, colorGrid)
	for j := 0; j <= cols; j++ {
		x := marginX + nameColW + float64(j)*dayColW
		r.canvas.Line(x, y, x, y+tableRowH, 0.1, colorGrid)
	}
}

func (r *Renderer) drawCheck(cx, cy float64) {
	r.canvas.Line(cx-1.5, cy, cx-0.5, cy+1.5, glyphCheck, colorCheck)
	r.canvas.Line(cx-0.5, cy+1.5, cx+2.5, cy-2.5, glyphCheck, colorCheck)
}

func (r *Renderer) drawCross(cx, cy float64) {
	const size = 1.2
	r.canvas.Line(cx-size, cy-size, cx+size, cy+size, glyphCross, colorCross)
	r.canvas.Line(cx+size, cy-size, cx-size, cy+size, glyphCross, colorCross)
}

// renderTrendGraph plots total habits completed per day across the chunk.
func (r *Renderer) renderTrendGraph(chunk domain.MonthChunk, graphY float64) {
	w := r.canvas.PageWidth()
	graphW := w - graphLeft - marginX

	r.canvas.Text(marginX, graphY-4, "Daily Completion Trend", TextStyle{Size: 12, Color: colorHeading, Bold: true})
	r.axes(graphY, graphW)

	maxHabits := len(r.habits)
	if maxHabits < 1 {
		maxHabits = 1
	}

	stats := domain.DailyStats(r.habits, r.completions, r.sleep, chunk.Dates)
	xStep := graphW / float64(maxInt(len(chunk.Dates)-1, 1))

	prevX, prevY := -1.0, -1.0
	for i, s := range stats {
		x := graphLeft + float64(i)*xStep
		y := graphY + graphHeight - float64(s.Completed)/float64(maxHabits)*graphHeight

		if i > 0 {
			r.canvas.Line(prevX, prevY, x, y, 0.6, colorTrend)
		}
		prevX, prevY = x, y

		r.canvas.FillCircle(x, y, 0.9, colorTrend)
		if s.Completed > 0 {
			r.canvas.Text(x, y-2, strconv.Itoa(s.Completed), TextStyle{Size: 6, Color: colorTrend, Align: AlignCenter})
		}

		if i%2 == 0 || i == len(stats)-1 {
			r.canvas.Text(x, graphY+graphHeight+4, strconv.Itoa(chunk.Dates[i].Day()),
				TextStyle{Size: 6, Color: colorTick, Align: AlignCenter})
		}
	}
}

// renderSleepGraph plots daily sleep hours clamped to the 0-12h export
// scale; untracked days read as 6h.
func (r *Renderer) renderSleepGraph(chunk domain.MonthChunk, graphY float64) {
	w := r.canvas.PageWidth()
	graphW := w - graphLeft - marginX

	r.canvas.Text(marginX, graphY-4, "Daily Sleep Tracker (Hours)", TextStyle{Size: 12, Color: colorHeading, Bold: true})
	r.axes(graphY, graphW)

	r.canvas.Text(graphLeft-2, graphY, "12h", TextStyle{Size: 6, Color: colorTick, Align: AlignRight})
	r.canvas.Text(graphLeft-2, graphY+graphHeight/2, "6h", TextStyle{Size: 6, Color: colorTick, Align: AlignRight})
	r.canvas.Text(graphLeft-2, graphY+graphHeight, "0h", TextStyle{Size: 6, Color: colorTick, Align: AlignRight})

	xStep := graphW / float64(maxInt(len(chunk.Dates)-1, 1))

	prevX, prevY := -1.0, -1.0
	for i, date := range chunk.Dates {
		mins := r.sleep.MinutesOr(domain.DateKey(date), domain.DefaultSleepMinutes)
		hours := clamp(float64(mins)/60, 0, sleepAxisMaxHours)

		x := graphLeft + float64(i)*xStep
		y := graphY + graphHeight - hours/sleepAxisMaxHours*graphHeight

		if i > 0 {
			r.canvas.Line(prevX, prevY, x, y, 0.6, colorSleep)
		}
		prevX, prevY = x, y

		r.canvas.FillCircle(x, y, 0.9, colorSleep)

		if i%2 == 0 || i == len(chunk.Dates)-1 {
			r.canvas.Text(x, graphY+graphHeight+4, strconv.Itoa(date.Day()),
				TextStyle{Size: 6, Color: colorTick, Align: AlignCenter})
		}
	}
}

func (r *Renderer) axes(graphY, graphW float64) {
	r.canvas.Line(graphLeft, graphY, graphLeft, graphY+graphHeight, 0.3, colorAxis)
	r.canvas.Line(graphLeft, graphY+graphHeight, graphLeft+graphW, graphY+graphHeight, 0.3, colorAxis)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
