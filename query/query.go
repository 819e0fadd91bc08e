// Package query maps free-text persona and task descriptions onto
// canonical keyword profiles and synthesizes the enriched query string
// used for embedding. All lexicons are fixed configuration data, loaded
// once and never mutated.
package query

import "strings"

// Profile is the fully built query for one ranking run.
type Profile struct {
	Persona string
	Task    string

	// PersonaCategory is a canonical category, or "general" when no
	// trigger phrase matched.
	PersonaCategory string
	PersonaKeywords []string
	TaskKeywords    []string

	// Text is the enriched query string handed to the embedder.
	Text string
}

// GeneralCategory is the fallback when no persona trigger matches.
const GeneralCategory = "general"

// personaKeywords maps each canonical persona category to its fixed
// keyword list, strongest first.
var personaKeywords = map[string][]string{
	"travel_planner":  {"destination", "itinerary", "accommodation", "attraction", "transport", "budget", "activity", "restaurant", "hotel"},
	"hr_professional": {"form", "onboarding", "compliance", "employee", "policy", "procedure", "documentation", "workflow", "training"},
	"food_contractor": {"recipe", "ingredient", "vegetarian", "buffet", "cooking", "menu", "preparation", "dietary", "portion"},
	"researcher":      {"methodology", "analysis", "data", "literature", "study", "research", "findings", "conclusion"},
	"student":         {"concept", "theory", "example", "practice", "exam", "study", "learning", "explanation"},
	"analyst":         {"trend", "performance", "metrics", "analysis", "comparison", "data", "insights", "report"},
}

// personaTriggers is an ordered first-match-wins list of trigger phrases.
var personaTriggers = []struct {
	trigger  string
	category string
}{
	{"travel", "travel_planner"},
	{"planner", "travel_planner"},
	{"hr", "hr_professional"},
	{"human resources", "hr_professional"},
	{"food", "food_contractor"},
	{"chef", "food_contractor"},
	{"contractor", "food_contractor"},
	{"researcher", "researcher"},
	{"student", "student"},
	{"analyst", "analyst"},
}

// taskArchetypes is the fixed task taxonomy, scanned in declaration
// order. When any keyword of an archetype appears in the task text, the
// archetype contributes its first three keywords.
var taskArchetypes = []struct {
	name     string
	keywords []string
}{
	{"planning", []string{"plan", "schedule", "organize", "prepare", "arrange", "coordinate"}},
	{"learning", []string{"learn", "understand", "study", "practice", "master", "tutorial"}},
	{"analysis", []string{"analyze", "evaluate", "compare", "assess", "review", "examine"}},
	{"preparation", []string{"prepare", "create", "make", "develop", "design", "build"}},
}

// PersonaCategory resolves a free-text persona description to a canonical
// category by ordered substring lookup.
func PersonaCategory(persona string) string {
	lower := strings.ToLower(persona)
	for _, t := range personaTriggers {
		if strings.Contains(lower, t.trigger) {
			return t.category
		}
	}
	return GeneralCategory
}

// PersonaKeywords returns the keyword list for a category; nil for
// unknown categories and for "general".
func PersonaKeywords(category string) []string {
	return personaKeywords[category]
}

// TaskKeywords extracts task keywords by scanning the archetype taxonomy.
// Results are deduplicated preserving first-seen order, so the output is
// deterministic for a given task string.
func TaskKeywords(task string) []string {
	lower := strings.ToLower(task)

	var keywords []string
	seen := make(map[string]bool)
	for _, arch := range taskArchetypes {
		matched := false
		for _, kw := range arch.keywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, kw := range arch.keywords[:3] {
			if !seen[kw] {
				seen[kw] = true
				keywords = append(keywords, kw)
			}
		}
	}
	return keywords
}

// Build assembles the full query profile for a persona/task pair. The
// enriched text is the raw persona and task followed by up to five
// persona keywords and up to three task keywords.
func Build(persona, task string) Profile {
	category := PersonaCategory(persona)
	personaKW := PersonaKeywords(category)
	taskKW := TaskKeywords(task)

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString(" ")
	b.WriteString(task)

	if len(personaKW) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(personaKW[:min(5, len(personaKW))], " "))
	}
	if len(taskKW) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(taskKW[:min(3, len(taskKW))], " "))
	}

	return Profile{
		Persona:         persona,
		Task:            task,
		PersonaCategory: category,
		PersonaKeywords: personaKW,
		TaskKeywords:    taskKW,
		Text:            b.String(),
	}
}
