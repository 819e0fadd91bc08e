package textutil

import (
	"reflect"
	"testing"
)

func TestCleanLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapse whitespace", "too   many\t spaces", "too many spaces"},
		{"strip artifacts", "bullet • point © 2020 text", "bullet point 2020 text"},
		{"trailing page number", "end of the page 42", "end of the page"},
		{"number mid-line kept", "see figure 3 for details", "see figure 3 for details"},
		{"keep basic punctuation", "a, b. c: d; e-f (g)?", "a, b. c: d; e-f (g)?"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanLine(tt.in); got != tt.want {
				t.Errorf("CleanLine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTextPreservesLines(t *testing.T) {
	in := "Heading  One\nbody   text here 12\n\nmore body"
	got := CleanText(in)
	want := "Heading One\nbody text here\n\nmore body"
	if got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}

func TestWords(t *testing.T) {
	got := Words("It's a well-known fact: 42 isn't enough.")
	want := []string{"It's", "a", "well-known", "fact", "42", "isn't", "enough"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestWordsEmpty(t *testing.T) {
	if got := Words(""); len(got) != 0 {
		t.Errorf("Words(\"\") = %v, want empty", got)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("First sentence. Second one! Third? Trailing fragment")
	if len(got) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "First sentence." {
		t.Errorf("first sentence = %q", got[0])
	}
	if got[3] != "Trailing fragment" {
		t.Errorf("trailing fragment = %q", got[3])
	}
}

func TestSentencesNoSplitMidToken(t *testing.T) {
	// Version numbers have no whitespace after the dot.
	got := Sentences("Use version 2.5 of the tool.")
	if len(got) != 1 {
		t.Errorf("expected 1 sentence, got %d: %v", len(got), got)
	}
}

func TestStopWordRatio(t *testing.T) {
	if r := StopWordRatio([]string{"the", "of", "quantum", "entanglement"}); r != 0.5 {
		t.Errorf("ratio = %v, want 0.5", r)
	}
	if r := StopWordRatio(nil); r != 0 {
		t.Errorf("ratio of empty = %v, want 0", r)
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("The") {
		t.Error("expected 'The' to be a stop word (case-insensitive)")
	}
	if IsStopWord("quantum") {
		t.Error("did not expect 'quantum' to be a stop word")
	}
}
