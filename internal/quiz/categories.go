package quiz

import (
	"fmt"
	"strings"

	"vocab-coach/internal/domain"
)

// curatedCategory is one entry of the fixed category prefix. The prefix
// order is significant: ascending IDs drive "next category" traversal.
type curatedCategory struct {
	slug        string
	name        string
	description string
	icon        string
}

var curatedCategories = []curatedCategory{
	{"basic-adjectives", "Basic Adjectives", "Fundamental descriptive words", "📝"},
	{"basic-verbs", "Basic Verbs", "Common action words", "🏃"},
	{"emotions", "Emotions & Feelings", "Words about feelings", "😊"},
	{"size-quantity", "Size & Quantity", "Measurements and amounts", "📏"},
	{"time-speed", "Time & Speed", "Temporal and velocity terms", "⏰"},
	{"appearance", "Appearance & Beauty", "Visual characteristics", "✨"},
	{"personality", "Personality & Character", "Character traits", "👤"},
	{"difficulty", "Difficulty & Ease", "Complexity levels", "🎯"},
	{"truth-honesty", "Truth & Honesty", "Integrity and veracity", "🤝"},
	{"physical", "Physical Properties", "Material characteristics", "🔬"},
	{"business-communication", "Business Communication", "Professional workplace vocabulary", "💼"},
	{"meeting-presentation", "Meeting & Presentation", "Conference and presentation terms", "📊"},
	{"pharmaceutical", "Pharmaceutical Terms", "Pharma industry vocabulary", "💊"},
	{"clinical-research", "Clinical Research", "Clinical trial terminology", "🔬"},
	{"data-science", "Data Science Basics", "Fundamental data science terms", "📈"},
}

// knownCategoryNames maps discovered category slugs to display names and
// icons. Slugs absent from this table fall back to a title-cased name and a
// default icon.
var knownCategoryNames = map[string]struct {
	name string
	icon string
}{
	"machine-learning":       {"Machine Learning", "🤖"},
	"daily-conversation":     {"Daily Conversation", "💬"},
	"food-dining":            {"Food & Dining", "🍽️"},
	"travel-transportation":  {"Travel & Transportation", "✈️"},
	"technology-digital":     {"Technology & Digital", "💻"},
	"advanced-business":      {"Advanced Business Strategy", "🎯"},
	"executive-leadership":   {"Executive Leadership", "👔"},
	"drug-development":       {"Drug Development Process", "🧬"},
	"regulatory-affairs":     {"Regulatory Affairs", "📋"},
	"advanced-analytics":     {"Advanced Analytics", "📊"},
	"ai-deep-learning":       {"AI & Deep Learning", "🧠"},
	"formal-communication":   {"Formal Communication", "📝"},
	"academic-research":      {"Academic & Research", "🎓"},
	"finance-economics":      {"Finance & Economics", "💰"},
	"legal-compliance":       {"Legal & Compliance", "⚖️"},
	"corporate-governance":   {"Corporate Governance", "🏢"},
	"quality-assurance":      {"Quality Assurance", "✅"},
	"bioinformatics":         {"Bioinformatics", "🧬"},
	"pharmacoeconomics":      {"Pharmacoeconomics", "💊"},
	"statistical-analysis":   {"Statistical Analysis", "📉"},
	"nlp":                    {"Natural Language Processing", "🗣️"},
	"negotiation-diplomacy":  {"Negotiation & Diplomacy", "🤝"},
	"scientific-research":    {"Scientific Research", "🔬"},
	"risk-management":        {"Risk Management", "⚠️"},
	"intellectual-discourse": {"Intellectual Discourse", "💭"},
	"project-management":     {"Project Management", "📋"},
	"supply-chain":           {"Supply Chain & Logistics", "🚚"},
	"medical-terminology":    {"Medical Terminology", "🏥"},
	"laboratory-procedures":  {"Laboratory Procedures", "🧪"},
	"database-sql":           {"Database & SQL", "🗄️"},
	"cloud-computing":        {"Cloud Computing", "☁️"},
	"social-interactions":    {"Social Interactions", "👥"},
	"weather-nature":         {"Weather & Nature", "🌤️"},
	"ethics-morality":        {"Ethics & Morality", "⚖️"},
	"innovation-creativity":  {"Innovation & Creativity", "💡"},
}

const defaultCategoryIcon = "📚"

// BuildCategories groups questions into categories: the curated prefix in
// its declared order, then any category slug present in the question list
// but not covered by the prefix, appended in first-seen order. IDs are dense
// starting at 1. Every question belongs to exactly one category.
func BuildCategories(questions []*domain.Question) []*domain.Category {
	grouped := make(map[string][]*domain.Question)
	var discoveredOrder []string
	for _, q := range questions {
		if _, seen := grouped[q.Category]; !seen {
			discoveredOrder = append(discoveredOrder, q.Category)
		}
		grouped[q.Category] = append(grouped[q.Category], q)
	}

	categories := make([]*domain.Category, 0, len(curatedCategories)+len(discoveredOrder))
	covered := make(map[string]bool, len(curatedCategories))
	for _, cur := range curatedCategories {
		covered[cur.slug] = true
		categories = append(categories, &domain.Category{
			ID:          len(categories) + 1,
			Name:        cur.name,
			Description: cur.description,
			Icon:        cur.icon,
			Questions:   grouped[cur.slug],
		})
	}

	for _, slug := range discoveredOrder {
		if covered[slug] {
			continue
		}
		name := titleCaseSlug(slug)
		icon := defaultCategoryIcon
		if known, ok := knownCategoryNames[slug]; ok {
			name = known.name
			icon = known.icon
		}
		categories = append(categories, &domain.Category{
			ID:          len(categories) + 1,
			Name:        name,
			Description: fmt.Sprintf("%s vocabulary", slug),
			Icon:        icon,
			Questions:   grouped[slug],
		})
	}

	return categories
}

func titleCaseSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
