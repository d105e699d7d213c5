package clock

import (
	"fmt"
	"strings"
)

// Letters is the fixed 10×10 letter grid. Two cells carry an apostrophe.
var Letters = [GridSize][GridSize]string{
	{"I", "T'", "S", "Q", "U", "A", "R", "T", "E", "R"},
	{"H", "A", "L", "F", "T", "W", "E", "N", "T", "Y"},
	{"F", "I", "V", "E", "T", "E", "N", "T", "I", "L"},
	{"P", "A", "S", "T", "T", "W", "E", "L", "V", "E"},
	{"T", "W", "O", "S", "I", "X", "F", "O", "U", "R"},
	{"T", "H", "R", "E", "E", "E", "I", "G", "H", "T"},
	{"E", "L", "E", "V", "E", "N", "O", "O", "N", "E"},
	{"F", "I", "V", "E", "N", "I", "N", "E", "Z", "N"},
	{"M", "I", "D", "N", "I", "G", "H", "T", "B", "A"},
	{"O'", "C", "L", "O", "C", "K", "D", "J", "P", "M"},
}

// pos is a (row, col) grid coordinate.
type pos struct{ row, col int }

// run returns n horizontally adjacent positions starting at (row, col).
func run(row, col, n int) []pos {
	out := make([]pos, n)
	for i := range out {
		out[i] = pos{row, col + i}
	}
	return out
}

// wordDef places a word on the grid. FIVE and TEN appear twice: once for
// minutes and once for hours, because "IT'S FIVE TIL FIVE PM" needs both lit
// with independent fade progress.
type wordDef struct {
	id    string
	name  string
	cells []pos
}

var wordDefs = []wordDef{
	{"ITS", "IT'S", run(0, 0, 3)},
	{"QUARTER", "QUARTER", run(0, 3, 7)},
	{"HALF", "HALF", run(1, 0, 4)},
	{"TWENTY", "TWENTY", run(1, 4, 6)},
	{"FIVE_MIN", "FIVE", run(2, 0, 4)},
	{"TEN_MIN", "TEN", run(2, 4, 3)},
	{"TIL", "TIL", run(2, 7, 3)},
	{"PAST", "PAST", run(3, 0, 4)},
	{"TWO", "TWO", run(4, 0, 3)},
	{"SIX", "SIX", run(4, 3, 3)},
	{"FOUR", "FOUR", run(4, 6, 4)},
	{"THREE", "THREE", run(5, 0, 5)},
	{"EIGHT", "EIGHT", run(5, 5, 5)},
	{"ELEVEN", "ELEVEN", run(6, 0, 6)},
	{"NOON", "NOON", run(6, 5, 4)},
	{"ONE", "ONE", run(6, 7, 3)},
	{"FIVE_HOUR", "FIVE", run(7, 0, 4)},
	{"TEN_HOUR", "TEN", []pos{{5, 9}, {6, 9}, {7, 9}}},
	{"SEVEN", "SEVEN", []pos{{4, 3}, {5, 3}, {6, 3}, {7, 3}, {8, 3}}},
	{"NINE", "NINE", run(7, 4, 4)},
	{"MIDNIGHT", "MIDNIGHT", run(8, 0, 8)},
	{"OCLOCK", "O'CLOCK", run(9, 0, 6)},
	{"AM", "AM", []pos{{8, 9}, {9, 9}}},
	{"PM", "PM", run(9, 8, 2)},
}

// hourNumbers lists the number word for hours 1..11 of either meridiem.
var hourNumbers = []string{
	"ONE", "TWO", "THREE", "FOUR", "FIVE_HOUR", "SIX",
	"SEVEN", "EIGHT", "NINE", "TEN_HOUR", "ELEVEN",
}

// Layout is the fully wired clock face: grid, words and the two index tables.
// Nothing in it changes after construction except cell colors and flags.
type Layout struct {
	Grid    *Grid
	Hours   [HourSlots]Phrase
	Minutes [MinuteSlots]Phrase

	words       []*Word
	byID        map[string]*Word
	hourWords   []*Word
	minuteWords []*Word
}

// NewLayout builds the clock face, painting every cell baseline on surface.
func NewLayout(surface Surface) *Layout {
	l := &Layout{
		Grid: NewGrid(Letters, surface),
		byID: make(map[string]*Word, len(wordDefs)),
	}

	for _, def := range wordDefs {
		cells := make([]*Cell, len(def.cells))
		for i, p := range def.cells {
			cells[i] = l.Grid.At(p.row, p.col)
		}
		w := NewWord(def.name, cells...)
		l.words = append(l.words, w)
		l.byID[def.id] = w
	}

	l.buildHours()
	l.buildMinutes()
	l.hourWords = collectWords(l.Hours[:])
	l.minuteWords = collectWords(l.Minutes[:])
	return l
}

func (l *Layout) buildHours() {
	oclock := l.byID["OCLOCK"]
	l.Hours[0] = bareWord{l.byID["MIDNIGHT"]}
	l.Hours[HourSlots/2] = bareWord{l.byID["NOON"]}
	for i, id := range hourNumbers {
		number := l.byID[id]
		l.Hours[i+1] = NewHourStatement(number, oclock, l.byID["AM"])
		l.Hours[i+1+HourSlots/2] = NewHourStatement(number, oclock, l.byID["PM"])
	}
}

func (l *Layout) buildMinutes() {
	its := l.byID["ITS"]
	stmt := func(quantity, relation string) *MinuteStatement {
		return NewMinuteStatement(its, l.byID[quantity], l.byID[relation])
	}

	// No phrase exists for 25 and 35 past; those buckets reuse the
	// preceding statement.
	twentyPast := stmt("TWENTY", "PAST")
	halfPast := stmt("HALF", "PAST")

	l.Minutes = [MinuteSlots]Phrase{
		bareWord{its},
		stmt("FIVE_MIN", "PAST"),
		stmt("TEN_MIN", "PAST"),
		stmt("QUARTER", "PAST"),
		twentyPast,
		twentyPast,
		halfPast,
		halfPast,
		stmt("TWENTY", "TIL"),
		stmt("QUARTER", "TIL"),
		stmt("TEN_MIN", "TIL"),
		stmt("FIVE_MIN", "TIL"),
	}
}

// collectWords returns the distinct words of the given entries in first-seen order.
func collectWords(entries []Phrase) []*Word {
	seen := make(map[*Word]bool)
	var out []*Word
	for _, p := range entries {
		for _, w := range p.Words() {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

// Word returns a word by id (e.g. "TWENTY", "FIVE_MIN", "FIVE_HOUR"), or nil.
func (l *Layout) Word(id string) *Word {
	return l.byID[id]
}

// Words returns every word of the face.
func (l *Layout) Words() []*Word {
	return l.words
}

// Hour returns the Hours entry at idx.
func (l *Layout) Hour(idx int) (Phrase, error) {
	if idx < 0 || idx >= HourSlots {
		return nil, fmt.Errorf("%w: hours[%d]", ErrIndexOutOfRange, idx)
	}
	return l.Hours[idx], nil
}

// Minute returns the Minutes entry at idx.
func (l *Layout) Minute(idx int) (Phrase, error) {
	if idx < 0 || idx >= MinuteSlots {
		return nil, fmt.Errorf("%w: minutes[%d]", ErrIndexOutOfRange, idx)
	}
	return l.Minutes[idx], nil
}

// LitWords returns the words displayed for hour index hi and minute bucket mi.
func (l *Layout) LitWords(hi, mi int) ([]*Word, error) {
	minute, err := l.Minute(mi)
	if err != nil {
		return nil, err
	}
	hour, err := l.Hour(hi)
	if err != nil {
		return nil, err
	}
	return append(minute.Lit(mi), hour.Lit(mi)...), nil
}

// Phrase renders the sentence displayed for hour index hi and minute bucket mi,
// e.g. "IT'S TWENTY TIL ONE AM".
func (l *Layout) Phrase(hi, mi int) (string, error) {
	words, err := l.LitWords(hi, mi)
	if err != nil {
		return "", err
	}
	return joinWords(words), nil
}

// LitCells returns the set of cells displayed for (hi, mi).
func (l *Layout) LitCells(hi, mi int) (map[*Cell]bool, error) {
	words, err := l.LitWords(hi, mi)
	if err != nil {
		return nil, err
	}
	cells := make(map[*Cell]bool)
	for _, w := range words {
		for _, c := range w.Cells() {
			cells[c] = true
		}
	}
	return cells, nil
}

// Render draws the grid as text, lit cells through lit and the rest through dim.
func (l *Layout) Render(hi, mi int, lit, dim func(string) string) (string, error) {
	cells, err := l.LitCells(hi, mi)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for r := 0; r < GridSize; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for c := 0; c < GridSize; c++ {
			cell := l.Grid.At(r, c)
			text := fmt.Sprintf("%-3s", cell.Text())
			if cells[cell] {
				sb.WriteString(lit(text))
			} else {
				sb.WriteString(dim(text))
			}
		}
	}
	return sb.String(), nil
}
