package annotate

import "errors"

// SelectSentinel is the dropdown placeholder. It is offered as a choice but
// never persisted as a final annotation.
const SelectSentinel = "Select..."

// Side qualifiers for locations that require lateralization.
const (
	SideLeft  = "Left"
	SideRight = "Right"
)

// Sides lists the valid side qualifiers, in the order they are offered.
var Sides = []string{SideLeft, SideRight}

var (
	ErrNoLocation      = errors.New("a location must be selected")
	ErrUnknownLocation = errors.New("location is not in the controlled vocabulary")
	ErrSideRequired    = errors.New("please select a side (Left or Right) for this location")
	ErrUnknownSide     = errors.New("side must be Left or Right")
)

// Vocabulary is the controlled location vocabulary for one deployment. The
// label sets differ between variants of the workflow (some use an Occlusion
// marker, some Stenosis, with different exclusion sets), so all of it is data
// rather than code.
type Vocabulary struct {
	// Locations are the selectable labels, excluding the selection sentinel.
	Locations []string
	// SideRequired is the subset of Locations that must carry a Left/Right
	// qualifier.
	SideRequired []string
	// SentinelValues maps locations with no numeric measurement to the fixed
	// token stored instead of user-entered text (e.g. Stenosis -> "X").
	SentinelValues map[string]string
	// ExcludeFromSummary lists locations whose annotations never appear in
	// the projected summary.
	ExcludeFromSummary []string
}

// DefaultVocabulary returns the venous-pressure label set with the Stenosis
// marker variant.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Locations: []string{
			"Torcula",
			"Posterior superior sagittal sinus",
			"Mid superior sagittal sinus",
			"Medial transverse sinus",
			"Lateral transverse sinus",
			"Transverse-sigmoid junction",
			"Sigmoid sinus",
			"Jugular bulb",
			"Internal jugular vein",
			"Internal jugular vein origin",
			"Subclavian",
			"Superior Vena Cava",
			"Inferior Vena Cava",
			"Stenosis",
			"Pre-Stenosis",
			"Post-Stenosis",
		},
		SideRequired: []string{
			"Medial transverse sinus",
			"Lateral transverse sinus",
			"Transverse-sigmoid junction",
			"Sigmoid sinus",
			"Jugular bulb",
			"Internal jugular vein",
			"Internal jugular vein origin",
			"Subclavian",
		},
		SentinelValues:     map[string]string{"Stenosis": "X"},
		ExcludeFromSummary: []string{"Stenosis"},
	}
}

// Contains reports whether location is a member of the vocabulary.
func (v Vocabulary) Contains(location string) bool {
	for _, l := range v.Locations {
		if l == location {
			return true
		}
	}
	return false
}

// RequiresSide reports whether location must carry a Left/Right qualifier.
func (v Vocabulary) RequiresSide(location string) bool {
	for _, l := range v.SideRequired {
		if l == location {
			return true
		}
	}
	return false
}

// ForcedValue returns the fixed token for a no-measurement location, if any.
func (v Vocabulary) ForcedValue(location string) (string, bool) {
	token, ok := v.SentinelValues[location]
	return token, ok
}

// ExcludedFromSummary reports whether annotations at location are dropped
// from the summary projection.
func (v Vocabulary) ExcludedFromSummary(location string) bool {
	for _, l := range v.ExcludeFromSummary {
		if l == location {
			return true
		}
	}
	return false
}

// Validate checks a submitted location and side. A rejected submission leaves
// all state untouched; the point stays pending.
func (v Vocabulary) Validate(location, side string) error {
	if location == "" || location == SelectSentinel {
		return ErrNoLocation
	}
	if !v.Contains(location) {
		return ErrUnknownLocation
	}
	if v.RequiresSide(location) {
		if side == "" || side == SelectSentinel {
			return ErrSideRequired
		}
		if side != SideLeft && side != SideRight {
			return ErrUnknownSide
		}
	}
	return nil
}
