package render

import (
	"os"

	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultFontCandidates are the font files tried in order when none are
// configured.
var DefaultFontCandidates = []string{"arialbd.ttf", "arial.ttf", "DejaVuSans-Bold.ttf"}

// PickFontFace returns the first usable face from the candidate files, then
// the embedded Go Bold face, then a fixed bitmap face as the last resort.
// It never fails; missing fonts only cost styling.
func PickFontFace(candidates []string, size float64) font.Face {
	if len(candidates) == 0 {
		candidates = DefaultFontCandidates
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			log.Warn("Cannot parse font file ", path, ": ", err)
			continue
		}
		return truetype.NewFace(f, &truetype.Options{Size: size})
	}

	if f, err := truetype.Parse(gobold.TTF); err == nil {
		log.Warn("No configured font available, using embedded Go Bold")
		return truetype.NewFace(f, &truetype.Options{Size: size})
	}

	log.Warn("Falling back to basic bitmap font; text may be small")
	return basicfont.Face7x13
}
