// Package repository loads the static JSON documents behind the quiz and
// listening features. There is no negotiation at runtime: file locations
// follow the asset path conventions the audio pipeline writes to.
package repository

import (
	"context"
	"encoding/json"
	"os"

	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"

	"go.uber.org/zap"
)

// QuestionRepository reads the static question document.
type QuestionRepository interface {
	FetchAll(ctx context.Context) ([]*domain.Question, error)
}

// FileQuestionRepository reads questions from a JSON file on disk.
type FileQuestionRepository struct {
	path string
}

func NewFileQuestionRepository(path string) *FileQuestionRepository {
	return &FileQuestionRepository{path: path}
}

// FetchAll loads every question. Transport or parse failures are surfaced
// as data-load errors, never as a silent empty list; the quiz feature is
// unusable without its backing document.
func (r *FileQuestionRepository) FetchAll(ctx context.Context) ([]*domain.Question, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, domain.NewDataLoadError("questions", err)
	}

	var questions []*domain.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, domain.NewDataLoadError("questions", err)
	}

	valid := questions[:0]
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			logger.Get().Warn("Skipping malformed question",
				zap.Int("question_id", q.ID),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, q)
	}

	logger.Get().Info("Questions loaded",
		zap.String("path", r.path),
		zap.Int("count", len(valid)),
	)
	return valid, nil
}
