package player

import (
	"testing"

	"vocab-coach/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testTrack() []domain.TimestampEntry {
	return []domain.TimestampEntry{
		{
			StartTime:      0,
			EndTime:        5,
			Word:           "meticulous",
			Synonyms:       []string{"careful", "thorough"},
			Daily:          "She is meticulous about her desk.",
			Pharmaceutical: "Meticulous documentation is required for trials.",
			DataScience:    "Meticulous data cleaning prevents bias.",
		},
		{
			StartTime: 5,
			EndTime:   9,
			Word:      "robust",
			Synonyms:  []string{"sturdy"},
			Daily:     "A robust cup survives drops.",
		},
	}
}

func TestResolveEntry(t *testing.T) {
	track := testTrack()

	tests := []struct {
		name    string
		seconds float64
		want    int
	}{
		{"start of first entry", 0, 0},
		{"inside first entry", 4.9, 0},
		{"boundary belongs to second entry", 5.0, 1},
		{"inside second entry", 8.99, 1},
		{"past last entry", 9.5, -1},
		{"exactly at end of track", 9.0, -1},
		{"before track start", -0.1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEntry(track, tt.seconds))
		})
	}
}

func TestResolveEntry_GapBetweenSpans(t *testing.T) {
	track := []domain.TimestampEntry{
		{StartTime: 0, EndTime: 2, Word: "a"},
		{StartTime: 4, EndTime: 6, Word: "b"},
	}
	assert.Equal(t, 0, resolveEntry(track, 1.5))
	assert.Equal(t, -1, resolveEntry(track, 3.0))
	assert.Equal(t, 1, resolveEntry(track, 4.0))
}

func TestSubtitleFragment_Phases(t *testing.T) {
	track := testTrack()
	entry := &track[0] // spans [0,5): phases switch at 0.75, 1.25, 2.25, 3.5

	tests := []struct {
		name     string
		seconds  float64
		contains []string
		excludes []string
	}{
		{"headword only", 0.0, []string{"meticulous"}, []string{"careful", "desk"}},
		{"late headword phase", 0.74, []string{"meticulous"}, []string{"careful"}},
		{"synonyms", 0.76, []string{"meticulous", "careful, thorough"}, []string{"desk"}},
		{"daily example", 1.3, []string{"meticulous", "desk"}, []string{"trials"}},
		{"pharmaceutical example", 2.3, []string{"trials"}, []string{"desk", "bias"}},
		{"data science example", 3.6, []string{"bias"}, []string{"trials"}},
		{"last tick of span", 4.99, []string{"bias"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragment := subtitleFragment(entry, tt.seconds)
			for _, want := range tt.contains {
				assert.Contains(t, fragment, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, fragment, not)
			}
		})
	}
}

func TestSubtitleFragment_MissingPartsFallBackToHeadword(t *testing.T) {
	entry := &domain.TimestampEntry{StartTime: 0, EndTime: 10, Word: "terse"}

	// No synonyms recorded: the synonym phase shows the headword alone.
	assert.Equal(t, subtitleFragment(entry, 0.5), subtitleFragment(entry, 2.0))
	// Missing example sentences never render an empty example span.
	assert.NotContains(t, subtitleFragment(entry, 5.0), "subtitle-example")
}
