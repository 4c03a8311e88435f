package annotate

import (
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// Session holds the entire mutable state of one interactive annotation
// session: the uploaded image with its current rotation, the recorded click
// points, the saved annotations and the next-id counter. One session is only
// ever touched from within a single interaction handler, guarded by the
// embedded mutex; nothing here survives a restart.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time

	Vocab        Vocabulary
	Tolerance    float64
	DisplayWidth int

	Points      []ClickPoint
	Annotations []Annotation

	original image.Image
	display  image.Image
	rotation int // degrees counter-clockwise, multiple of 90
	nextID   int
}

// NewSession wraps an uploaded image into a fresh session. The display image
// is the original resized to displayWidth, preserving aspect ratio.
func NewSession(id string, original image.Image, vocab Vocabulary, tolerance float64, displayWidth int) *Session {
	s := &Session{
		ID:           id,
		CreatedAt:    time.Now(),
		Vocab:        vocab,
		Tolerance:    tolerance,
		DisplayWidth: displayWidth,
		original:     original,
		nextID:       1,
	}
	s.rebuildDisplay()
	return s
}

// Display returns the currently displayed (rotated and resized) image. Click
// coordinates live in this image's coordinate space.
func (s *Session) Display() image.Image {
	return s.display
}

// Rotation returns the current rotation angle in degrees counter-clockwise.
func (s *Session) Rotation() int {
	return s.rotation
}

// Rotate advances the displayed image by 90 degrees counter-clockwise.
// Recorded points and annotations are left untouched.
func (s *Session) Rotate() {
	s.rotation = (s.rotation + 90) % 360
	s.rebuildDisplay()
}

func (s *Session) rebuildDisplay() {
	img := s.original
	switch s.rotation {
	case 90:
		img = imaging.Rotate90(img)
	case 180:
		img = imaging.Rotate180(img)
	case 270:
		img = imaging.Rotate270(img)
	}
	s.display = imaging.Resize(img, s.DisplayWidth, 0, imaging.Lanczos)
}

// AddClick records a clicked coordinate unless it duplicates an existing
// point within the session tolerance. Re-submitting a coordinate that
// already matches a recorded point never grows the collection.
func (s *Session) AddClick(p ClickPoint) bool {
	points, added := AddIfNew(s.Points, p, s.Tolerance)
	s.Points = points
	return added
}

// SaveAnnotation validates a submission for the point at (x, y) and, on
// success, appends a new annotation with the next id. Locations carrying a
// no-measurement token override the submitted value; a side is stored only
// for locations that require one. On a validation error nothing changes.
func (s *Session) SaveAnnotation(x, y float64, location, side, value string) (Annotation, error) {
	if err := s.Vocab.Validate(location, side); err != nil {
		return Annotation{}, err
	}
	if token, ok := s.Vocab.ForcedValue(location); ok {
		value = token
	}
	if !s.Vocab.RequiresSide(location) {
		side = ""
	}

	a := Annotation{
		ID:       s.nextID,
		X:        x,
		Y:        y,
		Location: location,
		Side:     side,
		Value:    value,
	}
	s.nextID++
	s.Annotations = append(s.Annotations, a)
	return a, nil
}

// DeleteAnnotation removes exactly the annotation with the given id, leaving
// all others and their ids unchanged. The matching click point is not
// removed; it reverts to pending in the next reconciliation pass. Ids are
// never reassigned.
func (s *Session) DeleteAnnotation(id int) bool {
	for i, a := range s.Annotations {
		if a.ID == id {
			s.Annotations = append(s.Annotations[:i], s.Annotations[i+1:]...)
			return true
		}
	}
	return false
}

// Partitioned recomputes which points are annotated and which are pending.
func (s *Session) Partitioned() (annotated, pending []ClickPoint) {
	return Partition(s.Points, s.Annotations, s.Tolerance)
}

// Summary projects the session's annotations into exportable rows.
func (s *Session) Summary() []SummaryRow {
	return Project(s.Annotations, s.Vocab)
}
