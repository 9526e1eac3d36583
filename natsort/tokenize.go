// SPDX-License-Identifier: MIT
// Package: vibrisca/natsort
//
// tokenize.go — partitioning of comparison keys into digit / non-digit runs.
//
// Invariant: concatenating a key's tokens in order reproduces the key
// byte-for-byte. Numeric tokens additionally carry an arbitrary-precision
// parsed value; text tokens carry a case-folded form for comparison.

package natsort

import (
	"math/big"
	"regexp"

	"golang.org/x/text/cases"
)

// token is one maximal run within a comparison key.
type token struct {
	text string   // raw run, preserves the concatenation invariant
	num  *big.Rat // parsed value when the run is numeric, nil otherwise
	fold string   // comparison form of a text run (case-folded unless CaseSensitive)
}

// numeric reports whether the token is a numeric run.
func (t token) numeric() bool { return t.num != nil }

// Numeric-run recognizers per NumberMode. Matches are maximal runs; the
// gaps between matches become text tokens.
var (
	reDigits     = regexp.MustCompile(`[0-9]+`)
	reSignedInts = regexp.MustCompile(`[+-]?[0-9]+`)
	reDecimals   = regexp.MustCompile(`[+-]?[0-9]+(?:\.[0-9]+)?`)
)

// pattern returns the numeric-run recognizer for mode m.
// newConfig has already rejected unknown modes.
func (m NumberMode) pattern() *regexp.Regexp {
	switch m {
	case SignedInts:
		return reSignedInts
	case Decimals:
		return reDecimals
	default:
		return reDigits
	}
}

// tokenizer partitions keys under one resolved configuration. It holds the
// case folder because a cases.Caser must not be shared across goroutines;
// each sorting call builds its own tokenizer.
type tokenizer struct {
	re            *regexp.Regexp
	folder        cases.Caser
	caseSensitive bool
}

// newTokenizer builds a tokenizer for cfg.
func newTokenizer(cfg config) *tokenizer {
	return &tokenizer{
		re:            cfg.mode.pattern(),
		folder:        cases.Fold(),
		caseSensitive: cfg.caseSensitive,
	}
}

// textToken builds a non-numeric token from s.
func (tk *tokenizer) textToken(s string) token {
	fold := s
	if !tk.caseSensitive {
		fold = tk.folder.String(s)
	}
	return token{text: s, fold: fold}
}

// numToken builds a numeric token from s. The recognizers only emit
// strings big.Rat accepts, so a parse failure means a recognizer bug and
// the run degrades to text rather than corrupting the order.
func (tk *tokenizer) numToken(s string) token {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return tk.textToken(s)
	}
	return token{text: s, num: r}
}

// split partitions s into its ordered token run. Empty input yields no
// tokens, which ranks before any non-empty key.
func (tk *tokenizer) split(s string) []token {
	if s == "" {
		return nil
	}
	spans := tk.re.FindAllStringIndex(s, -1)
	if spans == nil {
		return []token{tk.textToken(s)}
	}
	toks := make([]token, 0, 2*len(spans)+1)
	prev := 0
	for _, sp := range spans {
		if sp[0] > prev {
			toks = append(toks, tk.textToken(s[prev:sp[0]]))
		}
		toks = append(toks, tk.numToken(s[sp[0]:sp[1]]))
		prev = sp[1]
	}
	if prev < len(s) {
		toks = append(toks, tk.textToken(s[prev:]))
	}
	return toks
}
