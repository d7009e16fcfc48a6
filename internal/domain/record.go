package domain

import (
	"bufio"
	"io"
	"math"
)

// FieldsPerRecord is the number of whitespace-separated tokens in one record
const FieldsPerRecord = 5

// MinVolumeCount is the smallest volume count a record needs to be tallied
const MinVolumeCount = 2

// Record is one line of a tagged n-gram frequency file:
//
//	K'il_NOUN	1749	3	1	1
//
// Only Year and VolumeCount take part in filtering.
type Record struct {
	Word          string
	Year          int
	VolumeCount   int
	DocumentCount int
	Extra         int
}

// Qualifies reports whether the record counts toward the tally for year
func (r Record) Qualifies(year int) bool {
	return r.Year == year && r.VolumeCount >= MinVolumeCount
}

// Tag classifies the record's word
func (r Record) Tag() (Tag, bool) {
	return ClassifyWord(r.Word)
}

// RecordReader reads fixed five-token records from a whitespace-delimited stream.
// Records are not line-aligned: a file with a missing or extra token shifts
// every following record in that file.
type RecordReader struct {
	scanner *bufio.Scanner
	tokens  [FieldsPerRecord]string
	err     error
}

// NewRecordReader creates a RecordReader over r
func NewRecordReader(r io.Reader) *RecordReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &RecordReader{scanner: s}
}

// Next reads the next record. It returns false once fewer than five tokens
// remain; trailing partial records are dropped. Check Err afterwards.
func (rr *RecordReader) Next() (Record, bool) {
	for i := range rr.tokens {
		if !rr.scanner.Scan() {
			rr.err = rr.scanner.Err()
			return Record{}, false
		}
		rr.tokens[i] = rr.scanner.Text()
	}

	return Record{
		Word:          rr.tokens[0],
		Year:          Atoi(rr.tokens[1]),
		VolumeCount:   Atoi(rr.tokens[2]),
		DocumentCount: Atoi(rr.tokens[3]),
		Extra:         Atoi(rr.tokens[4]),
	}, true
}

// Err returns the first read error, if any. Running out of input is not an error.
func (rr *RecordReader) Err() error {
	return rr.err
}

// Atoi parses an optional sign followed by leading decimal digits and ignores
// the rest. Input with no leading digits yields 0. Values beyond the int32
// range are clamped.
func Atoi(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
			if neg {
				n++
			}
			break
		}
	}

	if neg {
		return -n
	}
	return n
}
