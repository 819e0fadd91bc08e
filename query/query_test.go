package query

import (
	"reflect"
	"strings"
	"testing"
)

func TestPersonaCategory(t *testing.T) {
	tests := []struct {
		persona string
		want    string
	}{
		{"Travel Planner", "travel_planner"},
		{"Senior HR Professional", "hr_professional"},
		{"Human Resources lead", "hr_professional"},
		{"Food Contractor", "food_contractor"},
		{"Executive Chef", "food_contractor"},
		{"PhD Researcher", "researcher"},
		{"Undergraduate student", "student"},
		{"Investment Analyst", "analyst"},
		{"Astronaut", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.persona, func(t *testing.T) {
			if got := PersonaCategory(tt.persona); got != tt.want {
				t.Errorf("PersonaCategory(%q) = %q, want %q", tt.persona, got, tt.want)
			}
		})
	}
}

func TestPersonaCategoryOrderedFirstMatch(t *testing.T) {
	// "travel" outranks "contractor" because the trigger list is ordered.
	if got := PersonaCategory("travel contractor"); got != "travel_planner" {
		t.Errorf("got %q, want travel_planner", got)
	}
}

func TestPersonaKeywordsUnknownCategory(t *testing.T) {
	if kw := PersonaKeywords("general"); kw != nil {
		t.Errorf("expected nil keywords for general, got %v", kw)
	}
}

func TestTaskKeywordsDeterministicOrder(t *testing.T) {
	// "prepare" triggers both planning and preparation; planning comes
	// first in the taxonomy and "prepare" is deduplicated on its second
	// appearance.
	got := TaskKeywords("Prepare a handout")
	want := []string{"plan", "schedule", "organize", "prepare", "create", "make"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TaskKeywords = %v, want %v", got, want)
	}
}

func TestTaskKeywordsSingleArchetype(t *testing.T) {
	got := TaskKeywords("Learn the basics of chess")
	want := []string{"learn", "understand", "study"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TaskKeywords = %v, want %v", got, want)
	}
}

func TestTaskKeywordsNoMatch(t *testing.T) {
	if got := TaskKeywords("sit quietly"); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestBuild(t *testing.T) {
	p := Build("Travel Planner", "Plan a 3-day itinerary")

	if p.PersonaCategory != "travel_planner" {
		t.Errorf("category = %q", p.PersonaCategory)
	}
	if !strings.HasPrefix(p.Text, "Travel Planner Plan a 3-day itinerary") {
		t.Errorf("text missing raw persona/task prefix: %q", p.Text)
	}
	// Top five persona keywords, in lexicon order.
	for _, kw := range []string{"destination", "itinerary", "accommodation", "attraction", "transport"} {
		if !strings.Contains(p.Text, kw) {
			t.Errorf("text missing persona keyword %q: %q", kw, p.Text)
		}
	}
	if strings.Contains(strings.TrimPrefix(p.Text, "Travel Planner Plan a 3-day itinerary"), "budget") {
		t.Errorf("more than five persona keywords included: %q", p.Text)
	}
	// First three task keywords from the planning archetype.
	for _, kw := range []string{"plan", "schedule", "organize"} {
		if !strings.Contains(p.Text, kw) {
			t.Errorf("text missing task keyword %q: %q", kw, p.Text)
		}
	}
}

func TestBuildGeneralPersona(t *testing.T) {
	p := Build("Astronaut", "orbit the moon")
	if p.PersonaCategory != GeneralCategory {
		t.Errorf("category = %q", p.PersonaCategory)
	}
	if p.Text != "Astronaut orbit the moon" {
		t.Errorf("text = %q", p.Text)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build("HR professional", "Create onboarding forms and review compliance")
	b := Build("HR professional", "Create onboarding forms and review compliance")
	if a.Text != b.Text {
		t.Errorf("query text not deterministic: %q vs %q", a.Text, b.Text)
	}
	if !reflect.DeepEqual(a.TaskKeywords, b.TaskKeywords) {
		t.Errorf("task keywords not deterministic: %v vs %v", a.TaskKeywords, b.TaskKeywords)
	}
}
