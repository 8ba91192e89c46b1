package quiz

import (
	"testing"

	"vocab-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id int, category string) *domain.Question {
	return &domain.Question{
		ID:            id,
		Category:      category,
		Question:      "word",
		Options:       []string{"right", "wrong"},
		CorrectAnswer: "right",
		Explanation:   "because",
	}
}

func TestBuildCategories_CuratedPrefixOrder(t *testing.T) {
	questions := []*domain.Question{
		question(1, "emotions"),
		question(2, "basic-adjectives"),
	}

	categories := BuildCategories(questions)
	require.GreaterOrEqual(t, len(categories), len(curatedCategories))

	// The curated prefix keeps its declared order regardless of which slug
	// appears first in the question list.
	assert.Equal(t, "Basic Adjectives", categories[0].Name)
	assert.Equal(t, 1, categories[0].ID)
	assert.Equal(t, "Emotions & Feelings", categories[2].Name)
	assert.Len(t, categories[0].Questions, 1)
	assert.Len(t, categories[2].Questions, 1)
}

func TestBuildCategories_DenseAscendingIDs(t *testing.T) {
	categories := BuildCategories([]*domain.Question{
		question(1, "basic-verbs"),
		question(2, "machine-learning"),
	})

	for i, category := range categories {
		assert.Equal(t, i+1, category.ID)
	}
}

func TestBuildCategories_DiscoveredAppendedInFirstSeenOrder(t *testing.T) {
	questions := []*domain.Question{
		question(1, "machine-learning"),
		question(2, "cloud-computing"),
		question(3, "machine-learning"),
	}

	categories := BuildCategories(questions)
	n := len(curatedCategories)
	require.Len(t, categories, n+2)

	assert.Equal(t, "Machine Learning", categories[n].Name)
	assert.Equal(t, "🤖", categories[n].Icon)
	assert.Len(t, categories[n].Questions, 2)
	assert.Equal(t, "Cloud Computing", categories[n+1].Name)
}

func TestBuildCategories_UnknownSlugGetsTitleCaseAndDefaultIcon(t *testing.T) {
	categories := BuildCategories([]*domain.Question{
		question(1, "quantum-biology"),
	})

	last := categories[len(categories)-1]
	assert.Equal(t, "Quantum Biology", last.Name)
	assert.Equal(t, defaultCategoryIcon, last.Icon)
	assert.Equal(t, "quantum-biology vocabulary", last.Description)
}

func TestBuildCategories_EmptyCuratedCategoryNotStartable(t *testing.T) {
	categories := BuildCategories([]*domain.Question{
		question(1, "basic-adjectives"),
	})

	assert.True(t, categories[0].Startable())
	// "basic-verbs" is curated but has no questions here.
	assert.False(t, categories[1].Startable())
}

func TestBuildCategories_EveryQuestionInExactlyOneCategory(t *testing.T) {
	questions := []*domain.Question{
		question(1, "basic-adjectives"),
		question(2, "emotions"),
		question(3, "machine-learning"),
		question(4, "emotions"),
	}

	categories := BuildCategories(questions)
	seen := make(map[int]int)
	for _, category := range categories {
		for _, q := range category.Questions {
			seen[q.ID]++
		}
	}
	require.Len(t, seen, len(questions))
	for id, count := range seen {
		assert.Equal(t, 1, count, "question %d appears %d times", id, count)
	}
}
