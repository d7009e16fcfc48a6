package domain

import "strings"

// Tag is a Google Books n-gram part-of-speech category
type Tag int

const (
	TagUnknown Tag = iota
	TagNoun
	TagVerb
	TagAdj
	TagAdv
	TagPron
	TagDet
	TagAdp
	TagNum
	TagConj
	TagPrt
	TagX
)

// NamedTags lists the ten named categories in report order.
// TagX is tracked separately and is not part of this list.
var NamedTags = []Tag{
	TagNoun,
	TagVerb,
	TagAdj,
	TagAdv,
	TagPron,
	TagDet,
	TagAdp,
	TagNum,
	TagConj,
	TagPrt,
}

var tagCodes = map[string]Tag{
	"NOUN": TagNoun,
	"VERB": TagVerb,
	"ADJ":  TagAdj,
	"ADV":  TagAdv,
	"PRON": TagPron,
	"DET":  TagDet,
	"ADP":  TagAdp,
	"NUM":  TagNum,
	"CONJ": TagConj,
	"PRT":  TagPrt,
	"X":    TagX,
}

// String returns the tag code as it appears in the corpus (e.g. "NOUN")
func (t Tag) String() string {
	switch t {
	case TagNoun:
		return "NOUN"
	case TagVerb:
		return "VERB"
	case TagAdj:
		return "ADJ"
	case TagAdv:
		return "ADV"
	case TagPron:
		return "PRON"
	case TagDet:
		return "DET"
	case TagAdp:
		return "ADP"
	case TagNum:
		return "NUM"
	case TagConj:
		return "CONJ"
	case TagPrt:
		return "PRT"
	case TagX:
		return "X"
	default:
		return "unknown"
	}
}

// IsNamed reports whether t is one of the ten named categories
func (t Tag) IsNamed() bool {
	return t >= TagNoun && t <= TagPrt
}

// ParseTag matches a tag code case-sensitively.
// Returns TagUnknown and false when code is not a known category.
func ParseTag(code string) (Tag, bool) {
	t, ok := tagCodes[code]
	if !ok {
		return TagUnknown, false
	}
	return t, true
}

// ExtractTag returns everything after the first underscore in a tagged word.
// A word without an underscore is returned unchanged.
func ExtractTag(word string) string {
	_, after, found := strings.Cut(word, "_")
	if !found {
		return word
	}
	return after
}

// ClassifyWord extracts and parses the tag of a tagged word like "K'il_NOUN"
func ClassifyWord(word string) (Tag, bool) {
	return ParseTag(ExtractTag(word))
}
