// Package study implements the deferred post-compile optimization step for
// engines built on stdlib regex syntax.
//
// Studying a pattern extracts literals that every match must contain and
// builds a prefilter from them: a single required literal becomes a
// substring check, several (one alternation branch each) become an
// Aho-Corasick automaton. At execution time the prefilter rejects subjects
// that cannot possibly match before the full engine runs.
//
// Not every pattern can be studied. Patterns without a required literal of
// useful length (pure character classes, anchors-only patterns, case-folded
// literals) are reported via ErrNoLiterals; the unstudied matcher stays
// fully usable.
package study

import (
	"errors"
	"regexp/syntax"
	"strings"

	"github.com/coregx/ahocorasick"
)

// Extraction limits. Literals shorter than minLiteralLen produce too many
// false candidates to pay for the filter; alternations wider than
// maxLiterals are cheaper to run unfiltered.
const (
	minLiteralLen = 2
	maxLiterals   = 64
)

// ErrNoLiterals reports a pattern the studier cannot optimize because no
// required literal set could be extracted.
var ErrNoLiterals = errors.New("study: no required literals in pattern")

// Prefilter answers "can this subject possibly match" without running the
// full engine. It is immutable after Compile and safe for concurrent use.
type Prefilter struct {
	single string
	multi  *ahocorasick.Automaton
	lits   []string
}

// Compile studies pattern and builds its prefilter. The pattern must be in
// stdlib-compatible syntax, with any inline flags already applied.
func Compile(pattern string) (*Prefilter, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		// The engine already accepted this pattern; a parse failure here
		// just means the studier cannot analyze it.
		return nil, ErrNoLiterals
	}

	lits := requiredLiterals(re.Simplify())
	if len(lits) == 0 {
		return nil, ErrNoLiterals
	}

	p := &Prefilter{lits: lits}
	if len(lits) == 1 {
		p.single = lits[0]
		return p, nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, ErrNoLiterals
	}
	p.multi = auto
	return p, nil
}

// MaybeMatch reports whether subject can possibly match the studied
// pattern. A false result is definitive; a true result still requires the
// full engine.
func (p *Prefilter) MaybeMatch(subject string) bool {
	if p.multi != nil {
		return p.multi.IsMatch([]byte(subject))
	}
	return strings.Contains(subject, p.single)
}

// Literals returns the required literal set the prefilter was built from,
// for diagnostics and tests.
func (p *Prefilter) Literals() []string {
	return p.lits
}

// requiredLiterals walks the syntax tree and collects a set of literals of
// which at least one must appear in any matching subject. A nil result
// means no such set exists.
//
// The rules are conservative: a literal is required only when it sits on
// every path through the pattern. Optional or repeated-zero subtrees
// contribute nothing; an alternation is usable only when every branch
// yields a required literal.
func requiredLiterals(re *syntax.Regexp) []string {
	switch re.Op {
	case syntax.OpLiteral:
		return literalString(re)

	case syntax.OpCapture:
		return requiredLiterals(re.Sub[0])

	case syntax.OpPlus:
		// One occurrence is mandatory.
		return requiredLiterals(re.Sub[0])

	case syntax.OpRepeat:
		if re.Min >= 1 {
			return requiredLiterals(re.Sub[0])
		}
		return nil

	case syntax.OpConcat:
		// Pick the longest single-literal requirement among the parts;
		// every part of a concat is mandatory, so any hit is sound, and
		// longer literals filter better.
		var best []string
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub)
			if len(lits) == 0 {
				continue
			}
			if better(lits, best) {
				best = lits
			}
		}
		return best

	case syntax.OpAlternate:
		// Every branch must contribute, otherwise a subject matching the
		// literal-free branch would be rejected by the filter.
		var all []string
		for _, sub := range re.Sub {
			lits := requiredLiterals(sub)
			if len(lits) == 0 {
				return nil
			}
			all = append(all, lits...)
			if len(all) > maxLiterals {
				return nil
			}
		}
		return all

	default:
		return nil
	}
}

// better prefers a candidate literal set over the current best: fewer
// literals first (cheaper filter), then longer shortest-literal.
func better(cand, best []string) bool {
	if len(best) == 0 {
		return true
	}
	if len(cand) != len(best) {
		return len(cand) < len(best)
	}
	return shortest(cand) > shortest(best)
}

func shortest(lits []string) int {
	min := len(lits[0])
	for _, l := range lits[1:] {
		if len(l) < min {
			min = len(l)
		}
	}
	return min
}

// literalString converts an OpLiteral node to a usable literal, or nil when
// it is too short or case-folded (a folded literal is not required in any
// fixed spelling).
func literalString(re *syntax.Regexp) []string {
	if re.Flags&syntax.FoldCase != 0 {
		return nil
	}
	s := string(re.Rune)
	if len(s) < minLiteralLen {
		return nil
	}
	return []string{s}
}
