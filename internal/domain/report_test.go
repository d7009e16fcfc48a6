package domain

import (
	"bytes"
	"strings"
	"testing"
)

func TestCounts_TallyBuckets(t *testing.T) {
	var c Counts

	words := []string{"a_NOUN", "b_NOUN", "c_VERB", "d_X", "e_PUNCT", "plain", "f_noun", "g_PRT"}
	matched := 0
	for _, w := range words {
		if c.Tally(Record{Word: w}) {
			matched++
		}
	}

	if matched != 5 {
		t.Errorf("expected 5 matched words, got %d", matched)
	}
	if c.Get(TagNoun) != 2 {
		t.Errorf("expected 2 nouns, got %d", c.Get(TagNoun))
	}
	if c.Get(TagVerb) != 1 || c.Get(TagPrt) != 1 {
		t.Errorf("expected 1 verb and 1 particle, got %d and %d", c.Get(TagVerb), c.Get(TagPrt))
	}
	if c.X != 1 {
		t.Errorf("expected 1 X, got %d", c.X)
	}
	if c.Sum() != 4 {
		t.Errorf("expected sum 4, got %d", c.Sum())
	}
	if c.SumWithX() != c.Sum()+c.X {
		t.Errorf("SumWithX %d != Sum %d + X %d", c.SumWithX(), c.Sum(), c.X)
	}
}

func TestCounts_Merge(t *testing.T) {
	var a, b Counts
	a.Add(TagNoun)
	a.Add(TagX)
	b.Add(TagNoun)
	b.Add(TagConj)
	b.Add(TagUnknown)

	a.Merge(b)

	if a.Get(TagNoun) != 2 || a.Get(TagConj) != 1 || a.X != 1 {
		t.Errorf("unexpected merge result: noun=%d conj=%d x=%d", a.Get(TagNoun), a.Get(TagConj), a.X)
	}
	if a.Get(TagUnknown) != 0 {
		t.Error("unknown tag should never be counted")
	}
}

func TestReport_EmptyCounts(t *testing.T) {
	r := &Report{Year: 1950}

	want := `There are 0 _NOUN_'s in the year 1950
There are 0 _VERB_'s in the year 1950
There are 0 _ADJ_'s in the year 1950
There are 0 _ADV_'s in the year 1950
There are 0 _PRON_'s in the year 1950
There are 0 _DET_'s in the year 1950
There are 0 _ADP_'s in the year 1950
There are 0 _NUM_ 's in the year 1950
There are 0 _CONJ_'s in the year 1950
There are 0 _PRT_'s in the year 1950

There are 0 words overall in the year 1950 with volume greater than or equal to 2
And there are 0 words, when including the _X tag
`
	if got := r.String(); got != want {
		t.Errorf("report mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestReport_SummaryLines(t *testing.T) {
	r := &Report{Year: 1950}
	r.Counts.Add(TagNoun)
	r.Counts.Add(TagX)

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	out := buf.String()

	for _, line := range []string{
		"There are 1 _NOUN_'s in the year 1950\n",
		"There are 1 words overall in the year 1950 with volume greater than or equal to 2\n",
		"And there are 2 words, when including the _X tag\n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected report to contain %q", line)
		}
	}

	lines := r.Lines()
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d", len(lines))
	}
	if lines[10] != "" {
		t.Errorf("expected blank separator line, got %q", lines[10])
	}
}
