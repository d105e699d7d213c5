package clock

import (
	"context"

	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// Phrase is one entry of the Hours or Minutes table: a bare word or a statement.
type Phrase interface {
	// Active reports the entry's own activity flag.
	Active() bool
	// FadeIn lights the entry for the given minute bucket.
	FadeIn(ctx context.Context, a *Animator, color core.Color, minuteBucket int) error
	// FadeOut retires the entry. idx is the bucket being entered: the hour
	// index for hour entries, the minute bucket for minute entries.
	FadeOut(ctx context.Context, a *Animator, color core.Color, idx int) error
	// Words returns every word the entry may light.
	Words() []*Word
	// Lit returns the words shown while the entry is current in minute bucket.
	Lit(minuteBucket int) []*Word

	// release drops a stale activity flag without animating.
	release()
}

// bareWord is a table entry made of a single word (MIDNIGHT, NOON, IT'S).
type bareWord struct {
	word *Word
}

func (b bareWord) Active() bool { return b.word.Active() }

func (b bareWord) FadeIn(ctx context.Context, a *Animator, color core.Color, _ int) error {
	return b.word.FadeIn(ctx, a, color)
}

func (b bareWord) FadeOut(ctx context.Context, a *Animator, color core.Color, _ int) error {
	return b.word.FadeOut(ctx, a, color)
}

func (b bareWord) Words() []*Word { return []*Word{b.word} }

func (b bareWord) Lit(int) []*Word { return []*Word{b.word} }

func (b bareWord) String() string { return b.word.Name() }

// The word's own flag is authoritative for a bare entry.
func (b bareWord) release() {}

// HourStatement is NUMBER O'CLOCK AM/PM.
type HourStatement struct {
	number   *Word
	oclock   *Word
	meridiem *Word
	active   bool
}

// NewHourStatement groups the three hour words.
func NewHourStatement(number, oclock, meridiem *Word) *HourStatement {
	return &HourStatement{number: number, oclock: oclock, meridiem: meridiem}
}

// Active implements Phrase.
func (s *HourStatement) Active() bool { return s.active }

// FadeIn lights the number and meridiem. O'CLOCK is shown only during the
// first five minutes of the hour and is faded out otherwise.
func (s *HourStatement) FadeIn(ctx context.Context, a *Animator, color core.Color, minuteBucket int) error {
	if err := s.number.FadeIn(ctx, a, color); err != nil {
		return err
	}
	if minuteBucket == 0 {
		if err := s.oclock.FadeIn(ctx, a, color); err != nil {
			return err
		}
	} else {
		if err := s.oclock.FadeOut(ctx, a, color); err != nil {
			return err
		}
	}
	if err := s.meridiem.FadeIn(ctx, a, color); err != nil {
		return err
	}
	s.active = true
	return nil
}

// FadeOut retires the number and O'CLOCK. AM/PM stays lit unless hourIdx
// enters MIDNIGHT or NOON, so consecutive same-meridiem hours do not blink it.
func (s *HourStatement) FadeOut(ctx context.Context, a *Animator, color core.Color, hourIdx int) error {
	if err := s.number.FadeOut(ctx, a, color); err != nil {
		return err
	}
	if err := s.oclock.FadeOut(ctx, a, color); err != nil {
		return err
	}
	if isMeridiemBoundary(hourIdx) {
		if err := s.meridiem.FadeOut(ctx, a, color); err != nil {
			return err
		}
	}
	s.active = false
	return nil
}

// Words implements Phrase.
func (s *HourStatement) Words() []*Word {
	return []*Word{s.number, s.oclock, s.meridiem}
}

// Lit implements Phrase.
func (s *HourStatement) Lit(minuteBucket int) []*Word {
	if minuteBucket == 0 {
		return []*Word{s.number, s.oclock, s.meridiem}
	}
	return []*Word{s.number, s.meridiem}
}

func (s *HourStatement) String() string { return joinWords(s.Words()) }

func (s *HourStatement) release() { s.active = false }

// MinuteStatement is IT'S QUANTITY PAST/TIL.
type MinuteStatement struct {
	its      *Word
	quantity *Word
	relation *Word
	active   bool
}

// NewMinuteStatement groups the three minute words.
func NewMinuteStatement(its, quantity, relation *Word) *MinuteStatement {
	return &MinuteStatement{its: its, quantity: quantity, relation: relation}
}

// Active implements Phrase.
func (s *MinuteStatement) Active() bool { return s.active }

// FadeIn lights all three words.
func (s *MinuteStatement) FadeIn(ctx context.Context, a *Animator, color core.Color, _ int) error {
	for _, w := range []*Word{s.its, s.quantity, s.relation} {
		if err := w.FadeIn(ctx, a, color); err != nil {
			return err
		}
	}
	s.active = true
	return nil
}

// FadeOut never touches IT'S and always retires the quantity. PAST/TIL is
// retired only when entering a bucket where the relation word changes.
func (s *MinuteStatement) FadeOut(ctx context.Context, a *Animator, color core.Color, minuteBucket int) error {
	if err := s.quantity.FadeOut(ctx, a, color); err != nil {
		return err
	}
	if isRelationBoundary(minuteBucket) {
		if err := s.relation.FadeOut(ctx, a, color); err != nil {
			return err
		}
	}
	s.active = false
	return nil
}

// Words implements Phrase.
func (s *MinuteStatement) Words() []*Word {
	return []*Word{s.its, s.quantity, s.relation}
}

// Lit implements Phrase.
func (s *MinuteStatement) Lit(int) []*Word { return s.Words() }

func (s *MinuteStatement) String() string { return joinWords(s.Words()) }

func (s *MinuteStatement) release() { s.active = false }

// isMeridiemBoundary reports whether entering hourIdx retires AM/PM:
// MIDNIGHT (0, or 24 before wrapping) and NOON (12) carry no meridiem.
func isMeridiemBoundary(hourIdx int) bool {
	return hourIdx == 0 || hourIdx == HourSlots/2 || hourIdx == HourSlots
}

// isRelationBoundary reports whether entering minuteBucket changes PAST/TIL:
// PAST→TIL at ":40" and TIL→nothing at ":00".
func isRelationBoundary(minuteBucket int) bool {
	return minuteBucket == hourAdvanceBucket || minuteBucket == 0
}
