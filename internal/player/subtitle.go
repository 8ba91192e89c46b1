package player

import (
	"fmt"
	"sort"
	"strings"

	"vocab-coach/internal/domain"
)

// Sub-phase boundaries as fractional progress through an entry's span.
// Within a matched entry the caption walks through the headword, its
// synonyms and the three example sentences recorded for the word.
const (
	phaseSynonyms       = 0.15
	phaseDaily          = 0.25
	phasePharmaceutical = 0.45
	phaseDataScience    = 0.70
)

// resolveEntry finds the index of the entry whose span contains the given
// position, or -1 when the position falls into a gap or past the track.
// Entries are ordered ascending and non-overlapping, so a binary search on
// StartTime is enough.
func resolveEntry(track []domain.TimestampEntry, seconds float64) int {
	// First entry starting after the position; the candidate is the one
	// before it.
	i := sort.Search(len(track), func(i int) bool {
		return track[i].StartTime > seconds
	})
	if i == 0 {
		return -1
	}
	if track[i-1].Contains(seconds) {
		return i - 1
	}
	return -1
}

// subtitleFragment builds the caption HTML for the given entry at the given
// playback position.
func subtitleFragment(entry *domain.TimestampEntry, seconds float64) string {
	span := entry.Duration()
	progress := 0.0
	if span > 0 {
		progress = (seconds - entry.StartTime) / span
	}

	word := fmt.Sprintf(`<span class="subtitle-word">%s</span>`, entry.Word)
	switch {
	case progress < phaseSynonyms:
		return word
	case progress < phaseDaily:
		if len(entry.Synonyms) == 0 {
			return word
		}
		return word + fmt.Sprintf(`<span class="subtitle-synonyms">%s</span>`, strings.Join(entry.Synonyms, ", "))
	case progress < phasePharmaceutical:
		return word + exampleSpan("daily", entry.Daily)
	case progress < phaseDataScience:
		return word + exampleSpan("pharmaceutical", entry.Pharmaceutical)
	default:
		return word + exampleSpan("data-science", entry.DataScience)
	}
}

func exampleSpan(kind, sentence string) string {
	if sentence == "" {
		return ""
	}
	return fmt.Sprintf(`<span class="subtitle-example %s">%s</span>`, kind, sentence)
}
