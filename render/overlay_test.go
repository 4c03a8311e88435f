package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venograph/annotate"
)

func whiteImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func TestDrawMarkersColorsByStatus(t *testing.T) {
	points := []annotate.ClickPoint{{X: 20, Y: 20}, {X: 80, Y: 80}}
	annotations := []annotate.Annotation{{ID: 1, X: 20, Y: 20, Location: "Torcula", Value: "12"}}

	out := DrawMarkers(whiteImage(100, 100), points, annotations, 5, DefaultStyle())

	r, g, b, _ := out.At(20, 20).RGBA()
	assert.Less(t, r>>8, uint32(100), "annotated marker should not be red")
	assert.Greater(t, g>>8, uint32(80), "annotated marker should be green")

	r, g, b, _ = out.At(80, 80).RGBA()
	assert.Greater(t, r>>8, uint32(200), "pending marker should be red")
	assert.Less(t, g>>8, uint32(100))
	assert.Less(t, b>>8, uint32(100))
}

func TestDrawMarkersLeavesBackgroundUntouched(t *testing.T) {
	out := DrawMarkers(whiteImage(100, 100), []annotate.ClickPoint{{X: 20, Y: 20}}, nil, 5, DefaultStyle())

	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, out.(*image.RGBA).RGBAAt(90, 90))
}

func TestDrawValuesRendersText(t *testing.T) {
	annotations := []annotate.Annotation{{ID: 1, X: 100, Y: 100, Location: "Torcula", Value: "12"}}

	out := DrawValues(whiteImage(200, 200), annotations, annotate.DefaultVocabulary(), DefaultStyle())
	require.NotNil(t, out)

	// Outlined text around the point must have darkened some pixels.
	darkened := 0
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 < 128 && g>>8 < 128 && b>>8 < 128 {
				darkened++
			}
		}
	}
	assert.Greater(t, darkened, 0)
}

func TestDrawValuesUsesSentinelToken(t *testing.T) {
	vocab := annotate.DefaultVocabulary()
	annotations := []annotate.Annotation{{ID: 1, X: 100, Y: 100, Location: "Stenosis", Value: "X"}}

	out := DrawValues(whiteImage(200, 200), annotations, vocab, DefaultStyle())

	// The sentinel token renders red; find at least one strongly red pixel.
	reddened := 0
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 < 80 && b>>8 < 80 {
				reddened++
			}
		}
	}
	assert.Greater(t, reddened, 0)
}
