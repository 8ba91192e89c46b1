package domain

// SessionWord is one entry of a listening session's word list.
type SessionWord struct {
	Word     string   `json:"word"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// ListeningSession bundles an audio file with its word list. Immutable once
// loaded from the catalog.
type ListeningSession struct {
	ID                int           `json:"id"`
	Title             string        `json:"title"`
	AudioFile         string        `json:"audioFile"`
	Words             []SessionWord `json:"words"`
	EstimatedDuration string        `json:"estimatedDuration"`
	CategoryRange     string        `json:"categoryRange"`
}

// Validate validates the listening session
func (s *ListeningSession) Validate() error {
	if s.ID == 0 {
		return NewValidationError("session ID is required")
	}
	if s.AudioFile == "" {
		return NewValidationError("audio file is required")
	}
	return nil
}

// CatalogMetadata describes the catalog as a whole.
type CatalogMetadata struct {
	TotalWords    int    `json:"totalWords"`
	TotalSessions int    `json:"totalSessions"`
	Version       string `json:"version,omitempty"`
}

// SessionCatalog is the static listening-practice catalog document.
type SessionCatalog struct {
	Metadata CatalogMetadata    `json:"metadata"`
	Sessions []ListeningSession `json:"sessions"`
}

// TimestampEntry is a time-bounded record driving phase-based caption text
// during playback. Entries are ordered ascending by StartTime and do not
// overlap within a session's track.
type TimestampEntry struct {
	StartTime      float64  `json:"startTime"`
	EndTime        float64  `json:"endTime"`
	Word           string   `json:"word"`
	Synonyms       []string `json:"synonyms"`
	Daily          string   `json:"daily"`
	Pharmaceutical string   `json:"pharmaceutical"`
	DataScience    string   `json:"dataScience"`
}

// Duration returns the length of the entry's span in seconds.
func (t *TimestampEntry) Duration() float64 {
	return t.EndTime - t.StartTime
}

// Contains reports whether the given playback position falls inside the
// entry's span. The start bound is inclusive, the end bound exclusive, so
// adjacent entries never both match.
func (t *TimestampEntry) Contains(seconds float64) bool {
	return seconds >= t.StartTime && seconds < t.EndTime
}
