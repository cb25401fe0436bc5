package report

import "strconv"

// Color is an opaque RGB color.
type Color struct {
	R, G, B int
}

// Palette used by the report pages.
var (
	colorBanner    = Color{67, 56, 202}   // indigo 700
	colorBannerSub = Color{224, 231, 255} // indigo 100
	colorWhite     = Color{255, 255, 255}
	colorHeading   = Color{51, 65, 85}    // slate 700
	colorBoxTitle  = Color{71, 85, 105}   // slate 600
	colorAxis      = Color{71, 85, 105}   // slate 600
	colorTick      = Color{100, 116, 139} // slate 500
	colorGrid      = Color{226, 232, 240} // slate 200
	colorStripe    = Color{248, 250, 252} // slate 50
	colorTrend     = Color{79, 70, 229}   // indigo 600
	colorSleep     = Color{6, 182, 212}   // cyan 500
	colorCheck     = Color{22, 163, 74}   // green 600
	colorCross     = Color{220, 38, 38}   // red 600
)

// ParseHexColor converts a #RRGGBB string to a Color. Malformed input yields
// mid gray.
func ParseHexColor(hex string) Color {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{128, 128, 128}
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return Color{128, 128, 128}
	}
	return Color{int(r), int(g), int(b)}
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle bundles the font attributes for a single text draw.
type TextStyle struct {
	Size  float64
	Color Color
	Bold  bool
	Align Align
}

// Canvas is the abstract drawing surface the layout engine renders onto.
// Coordinates are in millimeters from the top-left corner of the page; text
// y positions are baselines.
type Canvas interface {
	PageWidth() float64
	PageHeight() float64

	// AddPage starts a new blank page; subsequent draws land on it.
	AddPage()

	FillRect(x, y, w, h float64, fill Color)
	// RoundedRect draws a filled rectangle with rounded corners and a
	// stroked border.
	RoundedRect(x, y, w, h, radius float64, fill, border Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	FillCircle(x, y, r float64, fill Color)
	Text(x, y float64, s string, st TextStyle)
}
