package render

import (
	"image"

	"github.com/fogleman/gg"

	"venograph/annotate"
)

// Style holds the export drawing knobs.
type Style struct {
	FontCandidates []string
	FontSize       float64
	MarkerRadius   float64
}

// DefaultStyle returns the drawing defaults: size 40 text, radius 6 markers.
func DefaultStyle() Style {
	return Style{
		FontCandidates: DefaultFontCandidates,
		FontSize:       40,
		MarkerRadius:   6,
	}
}

// DrawMarkers returns a copy of img with one filled dot per click point:
// green when the point reconciles to an annotation, red while it is pending.
func DrawMarkers(img image.Image, points []annotate.ClickPoint, annotations []annotate.Annotation, tolerance float64, style Style) image.Image {
	dc := gg.NewContextForImage(img)
	for _, p := range points {
		if annotate.IsAnnotated(p, annotations, tolerance) {
			dc.SetRGB(0, 0.5, 0)
		} else {
			dc.SetRGB(1, 0, 0)
		}
		dc.DrawCircle(p.X, p.Y, style.MarkerRadius)
		dc.Fill()
	}
	return dc.Image()
}

// DrawValues returns a copy of img with each annotation's value centered on
// its point: white text with a black outline, except no-measurement tokens
// which render in red.
func DrawValues(img image.Image, annotations []annotate.Annotation, vocab annotate.Vocabulary, style Style) image.Image {
	dc := gg.NewContextForImage(img)
	dc.SetFontFace(PickFontFace(style.FontCandidates, style.FontSize))

	for _, a := range annotations {
		text := a.Value
		if token, ok := vocab.ForcedValue(a.Location); ok {
			text = token
		}

		// Outline first, then the fill on top.
		dc.SetRGB(0, 0, 0)
		for dx := -2.0; dx <= 2; dx++ {
			for dy := -2.0; dy <= 2; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				dc.DrawStringAnchored(text, a.X+dx, a.Y+dy, 0.5, 0.5)
			}
		}

		if _, sentinel := vocab.ForcedValue(a.Location); sentinel {
			dc.SetRGB(1, 0, 0)
		} else {
			dc.SetRGB(1, 1, 1)
		}
		dc.DrawStringAnchored(text, a.X, a.Y, 0.5, 0.5)
	}
	return dc.Image()
}
