package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRejectsMissingLocation(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.ErrorIs(t, vocab.Validate("", ""), ErrNoLocation)
	assert.ErrorIs(t, vocab.Validate(SelectSentinel, ""), ErrNoLocation)
}

func TestValidateRejectsUnknownLocation(t *testing.T) {
	vocab := DefaultVocabulary()
	assert.ErrorIs(t, vocab.Validate("Basilar artery", ""), ErrUnknownLocation)
}

func TestValidateSideRequirement(t *testing.T) {
	vocab := DefaultVocabulary()

	assert.ErrorIs(t, vocab.Validate("Sigmoid sinus", ""), ErrSideRequired)
	assert.ErrorIs(t, vocab.Validate("Sigmoid sinus", SelectSentinel), ErrSideRequired)
	assert.ErrorIs(t, vocab.Validate("Sigmoid sinus", "Middle"), ErrUnknownSide)
	assert.NoError(t, vocab.Validate("Sigmoid sinus", SideLeft))
	assert.NoError(t, vocab.Validate("Sigmoid sinus", SideRight))

	// Locations outside the side-required subset accept any side input; the
	// session drops it on save.
	assert.NoError(t, vocab.Validate("Torcula", ""))
	assert.NoError(t, vocab.Validate("Torcula", SelectSentinel))
}

func TestForcedValue(t *testing.T) {
	vocab := DefaultVocabulary()

	token, ok := vocab.ForcedValue("Stenosis")
	assert.True(t, ok)
	assert.Equal(t, "X", token)

	_, ok = vocab.ForcedValue("Torcula")
	assert.False(t, ok)
}

func TestVocabularyIsData(t *testing.T) {
	// The Occlusion variant is a different data set, not different code.
	vocab := Vocabulary{
		Locations:          []string{"Torcula", "Occlusion"},
		SentinelValues:     map[string]string{"Occlusion": "OCL"},
		ExcludeFromSummary: []string{"Occlusion"},
	}

	assert.NoError(t, vocab.Validate("Occlusion", ""))
	token, ok := vocab.ForcedValue("Occlusion")
	assert.True(t, ok)
	assert.Equal(t, "OCL", token)
	assert.True(t, vocab.ExcludedFromSummary("Occlusion"))
	assert.False(t, vocab.RequiresSide("Torcula"))
}
