package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vocab-coach/internal/config"
	"vocab-coach/internal/domain"
	"vocab-coach/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileQuestionRepository_FetchAll(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.json", `[
		{
			"id": 1,
			"category": "basic-adjectives",
			"question": "meticulous",
			"options": ["careful", "careless"],
			"correctAnswer": "careful",
			"explanation": "Meticulous means very careful."
		},
		{
			"id": 2,
			"category": "basic-adjectives",
			"question": "robust",
			"options": ["sturdy", "fragile", "tiny"],
			"correctAnswer": "sturdy",
			"explanation": "Robust means strong."
		}
	]`)

	questions, err := NewFileQuestionRepository(path).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "meticulous", questions[0].Question)
	assert.Equal(t, "sturdy", questions[1].CorrectAnswer)
}

func TestFileQuestionRepository_MalformedQuestionsSkipped(t *testing.T) {
	// The second question has one option and the third has no matching
	// correct answer; both are dropped, the rest survive.
	path := writeFile(t, t.TempDir(), "questions.json", `[
		{
			"id": 1,
			"category": "emotions",
			"question": "elated",
			"options": ["joyful", "gloomy"],
			"correctAnswer": "joyful",
			"explanation": "Elated means very happy."
		},
		{
			"id": 2,
			"category": "emotions",
			"question": "broken",
			"options": ["only"],
			"correctAnswer": "only",
			"explanation": "x"
		},
		{
			"id": 3,
			"category": "emotions",
			"question": "orphaned",
			"options": ["a", "b"],
			"correctAnswer": "c",
			"explanation": "x"
		}
	]`)

	questions, err := NewFileQuestionRepository(path).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, 1, questions[0].ID)
}

func TestFileQuestionRepository_MissingFileIsDataLoadError(t *testing.T) {
	repo := NewFileQuestionRepository(filepath.Join(t.TempDir(), "absent.json"))

	_, err := repo.FetchAll(context.Background())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrDataLoad, domainErr.Code)
}

func TestFileQuestionRepository_InvalidJSONIsDataLoadError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "questions.json", `{not json`)

	_, err := NewFileQuestionRepository(path).FetchAll(context.Background())
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrDataLoad, domainErr.Code)
}
