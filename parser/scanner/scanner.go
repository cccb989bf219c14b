// Package scanner implements the lexer described in spec §4.1: a single
// look-ahead byte drives a flat classifier over an in-memory source
// string. It owns the source; the parser owns the scanner.
package scanner

import (
	"github.com/jameslahm/yajp/ast"
	"github.com/jameslahm/yajp/token"
)

// ErrorKind tags a scanner-level diagnostic; see spec §7's taxonomy.
type ErrorKind int

const (
	UnknownCharacter ErrorKind = iota
	UnterminatedString
)

// Error is a soft error the scanner recorded rather than failing on;
// spec §4.1's "Failure" paragraph: "the lexer does not fail."
type Error struct {
	Kind   ErrorKind
	Offset ast.Idx
	Ch     byte
}

// Scanner classifies one token at a time from src. Construct with New,
// then call Next repeatedly; it reports Eof forever once the source is
// exhausted, per spec §4.1's contract.
type Scanner struct {
	src string
	pos int // offset of the next unread byte

	// current holds the most recently classified token.
	current    token.Token
	literal    string
	tokenStart ast.Idx

	errors []Error
}

// New constructs a Scanner over an owned source string. It does not prime
// the first token — call Next once before inspecting Current/Literal, the
// same two-step protocol as the teacher's own parser.newParser/parse().
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Current returns the most recently classified token kind.
func (s *Scanner) Current() token.Token { return s.current }

// Literal returns the lexeme text for the most recently classified token:
// the identifier text, the numeric text, or the unescaped string body.
func (s *Scanner) Literal() string { return s.literal }

// TokenStart returns the source offset the current token began at, used
// for structured diagnostics (spec §7 category 4).
func (s *Scanner) TokenStart() ast.Idx { return s.tokenStart }

// Errors returns every soft error accumulated so far (unknown characters,
// unterminated strings). Scanning never stops because of one.
func (s *Scanner) Errors() []Error { return s.errors }

// Checkpoint captures enough Scanner state to Rewind back to it; used by
// the parser's "async" lookahead, which must look past the keyword to see
// whether "function" follows before deciding which production it's in.
type Checkpoint struct {
	pos        int
	current    token.Token
	literal    string
	tokenStart ast.Idx
	errLen     int
}

func (s *Scanner) Mark() Checkpoint {
	return Checkpoint{
		pos:        s.pos,
		current:    s.current,
		literal:    s.literal,
		tokenStart: s.tokenStart,
		errLen:     len(s.errors),
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.pos = c.pos
	s.current = c.current
	s.literal = c.literal
	s.tokenStart = c.tokenStart
	s.errors = s.errors[:c.errLen]
}

func (s *Scanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekAt(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentifierPart(ch byte) bool {
	return isAlpha(ch) || isDigit(ch) || ch == '_'
}

// Next advances to and classifies the next token, per spec §4.1's
// algorithm. It returns the new current token for convenience.
func (s *Scanner) Next() token.Token {
	// 1. Skip runs of whitespace.
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}

	if s.pos >= len(s.src) {
		s.tokenStart = ast.Idx(s.pos)
		s.current, s.literal = token.Eof, ""
		return s.current
	}

	start := s.pos
	s.tokenStart = ast.Idx(start)
	ch := s.src[s.pos]

	switch {
	case isAlpha(ch):
		// 2. Identifier-like run.
		for s.pos < len(s.src) && isIdentifierPart(s.src[s.pos]) {
			s.pos++
		}
		word := s.src[start:s.pos]
		tok, _ := token.Lookup(word)
		s.current, s.literal = tok, word
		return s.current

	case isDigit(ch):
		// 3. Numeric run. Per spec §9/§4.1 note, the source accepts any
		// number of '.' in sequence — here rejected after the first: a
		// second '.' ends the numeric run instead of extending it, fixing
		// the documented FIXME (multi-dot numeric lexing) rather than
		// reproducing it.
		seenDot := false
		for s.pos < len(s.src) {
			c := s.src[s.pos]
			if isDigit(c) {
				s.pos++
				continue
			}
			if c == '.' && !seenDot {
				seenDot = true
				s.pos++
				continue
			}
			break
		}
		s.current, s.literal = token.Numeric, s.src[start:s.pos]
		return s.current

	case ch == '"':
		// 4. String literal, no escape processing.
		s.pos++
		bodyStart := s.pos
		for s.pos < len(s.src) && s.src[s.pos] != '"' {
			s.pos++
		}
		if s.pos >= len(s.src) {
			s.errors = append(s.errors, Error{Kind: UnterminatedString, Offset: ast.Idx(start)})
			s.current, s.literal = token.String, s.src[bodyStart:s.pos]
			return s.current
		}
		s.literal = s.src[bodyStart:s.pos]
		s.pos++ // consume closing quote
		s.current = token.String
		return s.current

	case ch == '=':
		// 6. Equal family: look ahead for ===, ==, =.
		s.pos++
		if s.peek() == '=' {
			s.pos++
			if s.peek() == '=' {
				s.pos++
				s.current, s.literal = token.StrictEqual, "==="
				return s.current
			}
			s.current, s.literal = token.Equal, "=="
			return s.current
		}
		s.current, s.literal = token.Assign, "="
		return s.current
	}

	// 5. Single-character punctuation and operators.
	if tok, ok := singleChar[ch]; ok {
		s.pos++
		s.current, s.literal = tok, string(ch)
		return s.current
	}

	// 8. Anything else is a soft error: skip and continue.
	s.errors = append(s.errors, Error{Kind: UnknownCharacter, Offset: ast.Idx(s.pos), Ch: ch})
	s.pos++
	return s.Next()
}

var singleChar = map[byte]token.Token{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'!': token.Not,
	'~': token.BitNot,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'(': token.LeftParenthesis,
	')': token.RightParenthesis,
	';': token.Semicolon,
	':': token.Colon,
	',': token.Comma,
}
