package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"

	"go.uber.org/zap"
)

// SessionRepository reads the listening-practice catalog and per-session
// timestamp tracks.
type SessionRepository interface {
	FetchCatalog(ctx context.Context) (*domain.SessionCatalog, error)
	// FetchTimestamps returns the timestamp track for a session, or nil
	// when the session has none. Absence is a valid outcome, not an error.
	FetchTimestamps(ctx context.Context, sessionID int) ([]domain.TimestampEntry, error)
}

// FileSessionRepository reads the catalog and timestamp tracks from disk,
// honoring the asset layout the audio pipeline produces:
//
//	<audioDir>/word_<questionId>.mp3
//	<audioDir>/listening/session_<id>_timestamps.json
//
// Timestamp tracks are memoized after the first successful read; the
// documents are immutable for the lifetime of the process.
type FileSessionRepository struct {
	catalogPath string
	audioDir    string

	mu     sync.Mutex
	tracks map[int][]domain.TimestampEntry
}

func NewFileSessionRepository(catalogPath, audioDir string) *FileSessionRepository {
	return &FileSessionRepository{
		catalogPath: catalogPath,
		audioDir:    audioDir,
		tracks:      make(map[int][]domain.TimestampEntry),
	}
}

// FetchCatalog loads the session catalog. Like questions, the catalog must
// fail loudly: no sessions should appear available if the fetch failed.
func (r *FileSessionRepository) FetchCatalog(ctx context.Context) (*domain.SessionCatalog, error) {
	raw, err := os.ReadFile(r.catalogPath)
	if err != nil {
		return nil, domain.NewDataLoadError("session catalog", err)
	}

	var catalog domain.SessionCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, domain.NewDataLoadError("session catalog", err)
	}

	for i := range catalog.Sessions {
		if err := catalog.Sessions[i].Validate(); err != nil {
			return nil, domain.NewDataLoadError("session catalog", err)
		}
	}

	logger.Get().Info("Session catalog loaded",
		zap.String("path", r.catalogPath),
		zap.Int("sessions", len(catalog.Sessions)),
	)
	return &catalog, nil
}

func (r *FileSessionRepository) FetchTimestamps(ctx context.Context, sessionID int) ([]domain.TimestampEntry, error) {
	r.mu.Lock()
	if track, ok := r.tracks[sessionID]; ok {
		r.mu.Unlock()
		return track, nil
	}
	r.mu.Unlock()

	path := filepath.Join(r.audioDir, "listening", fmt.Sprintf("session_%d_timestamps.json", sessionID))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.NewDataLoadError("timestamp track", err)
	}

	var track []domain.TimestampEntry
	if err := json.Unmarshal(raw, &track); err != nil {
		return nil, domain.NewDataLoadError("timestamp track", err)
	}

	// Subtitle resolution binary-searches on StartTime; keep the invariant
	// even if the generator wrote entries out of order.
	sort.Slice(track, func(i, j int) bool {
		return track[i].StartTime < track[j].StartTime
	})

	r.mu.Lock()
	r.tracks[sessionID] = track
	r.mu.Unlock()

	logger.Get().Info("Timestamp track loaded",
		zap.Int("session_id", sessionID),
		zap.Int("entries", len(track)),
	)
	return track, nil
}

// WordAudioURL resolves the pre-generated pronunciation file for a question
// and returns its asset path, or a not-found error when the file is absent.
func (r *FileSessionRepository) WordAudioURL(questionID int) (string, error) {
	name := fmt.Sprintf("word_%d.mp3", questionID)
	if _, err := os.Stat(filepath.Join(r.audioDir, name)); err != nil {
		return "", domain.NewNotFoundError(fmt.Sprintf("No audio file for question %d", questionID))
	}
	return "assets/audio/" + name, nil
}
