package svgtiles

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// scanner is a cursor over transform or path data. Parsers own one scanner
// per call and thread it through their helpers.
type scanner struct {
	s   string
	pos int
}

func isWsp(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

// peek returns the byte under the cursor, or 0 at the end of input.
func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) skipWsp() {
	for !sc.eof() && isWsp(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipCommaWsp consumes optional whitespace, at most one comma, and more
// whitespace. It reports whether anything was consumed.
func (sc *scanner) skipCommaWsp() bool {
	start := sc.pos
	sc.skipWsp()
	if sc.peek() == ',' {
		sc.pos++
		sc.skipWsp()
	}
	return sc.pos > start
}

// skipSeparators consumes any run of whitespace and commas and reports
// whether it was non-empty.
func (sc *scanner) skipSeparators() bool {
	start := sc.pos
	for !sc.eof() && (isWsp(sc.s[sc.pos]) || sc.s[sc.pos] == ',') {
		sc.pos++
	}
	return sc.pos > start
}

// rest returns the unconsumed input.
func (sc *scanner) rest() string {
	if sc.eof() {
		return ""
	}
	return sc.s[sc.pos:]
}

// numberEnd returns the end offset of the number literal starting at pos,
// or -1 when no number starts there. A number is
// [sign] digits [ '.' digits ] [ exponent ] with at least one digit on
// either side of the point; an exponent marker not followed by digits is
// left unconsumed.
func (sc *scanner) numberEnd() int {
	i := sc.pos
	s := sc.s
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return -1
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

// number reads a number literal. ok is false, and nothing is consumed,
// when no number starts at the cursor.
func (sc *scanner) number() (v float64, ok bool, err error) {
	end := sc.numberEnd()
	if end < 0 {
		return 0, false, nil
	}
	lit := sc.s[sc.pos:end]
	f, n := strconv.ParseFloat([]byte(lit))
	if n != len(lit) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false, newParseError(ErrMalformedNumber, sc.s, sc.pos)
	}
	sc.pos = end
	return f, true, nil
}

// flag reads a single-character arc flag.
func (sc *scanner) flag() (float64, bool) {
	switch sc.peek() {
	case '0':
		sc.pos++
		return 0, true
	case '1':
		sc.pos++
		return 1, true
	}
	return 0, false
}

// keyword consumes word if the input continues with it.
func (sc *scanner) keyword(word string) bool {
	if len(sc.s)-sc.pos < len(word) || sc.s[sc.pos:sc.pos+len(word)] != word {
		return false
	}
	sc.pos += len(word)
	return true
}
