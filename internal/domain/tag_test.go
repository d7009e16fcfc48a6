package domain

import "testing"

func TestExtractTag(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "simple noun", word: "K'il_NOUN", want: "NOUN"},
		{name: "no underscore", word: "plain", want: "plain"},
		{name: "multiple underscores keeps rest", word: "New_York_NOUN", want: "York_NOUN"},
		{name: "leading underscore", word: "_NOUN_", want: "NOUN_"},
		{name: "trailing underscore", word: "word_", want: ""},
		{name: "x tag", word: "Thing_X", want: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTag(tt.word); got != tt.want {
				t.Errorf("ExtractTag(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	for _, tag := range append(NamedTags, TagX) {
		got, ok := ParseTag(tag.String())
		if !ok {
			t.Errorf("ParseTag(%q) not recognised", tag.String())
			continue
		}
		if got != tag {
			t.Errorf("ParseTag(%q) = %v, want %v", tag.String(), got, tag)
		}
	}

	for _, code := range []string{"noun", "Noun", "", "PUNCT", "York_NOUN", "."} {
		if got, ok := ParseTag(code); ok {
			t.Errorf("ParseTag(%q) = %v, expected no match", code, got)
		}
	}
}

func TestNamedTags_Order(t *testing.T) {
	want := []string{"NOUN", "VERB", "ADJ", "ADV", "PRON", "DET", "ADP", "NUM", "CONJ", "PRT"}
	if len(NamedTags) != len(want) {
		t.Fatalf("expected %d named tags, got %d", len(want), len(NamedTags))
	}
	for i, tag := range NamedTags {
		if tag.String() != want[i] {
			t.Errorf("NamedTags[%d] = %s, want %s", i, tag, want[i])
		}
		if !tag.IsNamed() {
			t.Errorf("%s should be named", tag)
		}
	}
	if TagX.IsNamed() {
		t.Error("X should not be a named tag")
	}
}
