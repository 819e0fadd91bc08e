package structure

import (
	"strings"
	"testing"
)

func TestMatchHeading(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantType  SectionType
		wantOK    bool
	}{
		{"chapter with colon", "Chapter 3: Origins", "Origins", TypeChapter, true},
		{"chapter upper", "CHAPTER 12. The Fall", "The Fall", TypeChapter, true},
		{"decimal subsection", "2.1 Background Theory", "Background Theory", TypeSubsection, true},
		{"numbered section", "3. Methods", "Methods", TypeSection, true},
		{"all caps heading", "EXECUTIVE SUMMARY", "EXECUTIVE SUMMARY", TypeMajorHeading, true},
		{"titled line", "Travel Tips: pack light and early", "pack light and early", TypeTitledSection, true},
		{"key section", "Introduction to the region", "Introduction to the region", TypeKeySection, true},
		{"key section case insensitive", "overview of the process", "overview of the process", TypeKeySection, true},
		{"plain prose", "this is just some ordinary text without structure", "", "", false},
		{"lowercase not major heading", "some words here", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, typ, ok := MatchHeading(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("MatchHeading(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if typ != tt.wantType {
				t.Errorf("type = %q, want %q", typ, tt.wantType)
			}
		})
	}
}

func TestMatchHeadingOrderSubsectionBeforeSection(t *testing.T) {
	// "2.1 X" must hit the subsection rule, never the section rule.
	_, typ, ok := MatchHeading("2.1 X Y")
	if !ok || typ != TypeSubsection {
		t.Fatalf("got type %q ok=%v, want subsection", typ, ok)
	}
}

func TestLooksLikeHeading(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"short capitalized", "Hotel Booking Advice", true},
		{"two capitalized words", "Packing List", true},
		{"too short", "ab", false},
		{"trailing period", "This Is Not A Heading.", false},
		{"stop word heavy", "is it the one of them", false},
		{"six plus words", "One Two Three Four Five Six", false},
		{"mostly lowercase words", "the quick brown fox", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeHeading(tt.line); got != tt.want {
				t.Errorf("LooksLikeHeading(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLooksLikeHeadingLongSentence(t *testing.T) {
	// A 40-word lowercase sentence ending in a period is never a heading.
	sentence := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 8)) + "."
	if _, _, ok := MatchHeading(sentence); ok {
		t.Fatal("pattern table matched a prose sentence")
	}
	if LooksLikeHeading(sentence) {
		t.Fatal("heuristic matched a prose sentence")
	}
}

func TestLooksLikeHeadingTooLong(t *testing.T) {
	line := strings.Repeat("Word ", 30) // > 100 chars
	if LooksLikeHeading(line) {
		t.Error("expected long line to be rejected")
	}
}
