package scanner_test

import (
	"testing"

	"github.com/jameslahm/yajp/parser/scanner"
	"github.com/jameslahm/yajp/token"
)

func tokens(t *testing.T, src string) []token.Token {
	t.Helper()
	s := scanner.New(src)
	var toks []token.Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok == token.Eof {
			return toks
		}
	}
}

func TestWhitespaceIsSkipped(t *testing.T) {
	got := tokens(t, "  \t\n a \n ")
	want := []token.Token{token.Identifier, token.Eof}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestKeywordLookup(t *testing.T) {
	s := scanner.New("function")
	if tok := s.Next(); tok != token.Function {
		t.Fatalf("expected Function, got %s", tok)
	}
}

func TestIdentifierIsNotAKeyword(t *testing.T) {
	s := scanner.New("functionX")
	if tok := s.Next(); tok != token.Identifier {
		t.Fatalf("expected Identifier, got %s", tok)
	}
	if s.Literal() != "functionX" {
		t.Fatalf("got literal %q", s.Literal())
	}
}

func TestTrueFalseNullAreLiteralsNotKeywords(t *testing.T) {
	for _, c := range []struct {
		src  string
		want token.Token
	}{
		{"true", token.Boolean},
		{"false", token.Boolean},
		{"null", token.Null},
	} {
		s := scanner.New(c.src)
		if tok := s.Next(); tok != c.want {
			t.Fatalf("%s: got %s, want %s", c.src, tok, c.want)
		}
	}
}

// TestNumericRejectsSecondDot is the documented fix over the source's
// multi-dot numeric lexing: a second '.' ends the numeric run instead of
// extending it. The dot itself then surfaces as a skipped unknown
// character, and the trailing "5" lexes as its own numeric token.
func TestNumericRejectsSecondDot(t *testing.T) {
	s := scanner.New("1.5.5")
	if tok := s.Next(); tok != token.Numeric || s.Literal() != "1.5" {
		t.Fatalf("got %s %q, want Numeric 1.5", tok, s.Literal())
	}
	if tok := s.Next(); tok != token.Numeric || s.Literal() != "5" {
		t.Fatalf("got %s %q, want Numeric 5", tok, s.Literal())
	}
	errs := s.Errors()
	if len(errs) != 1 || errs[0].Kind != scanner.UnknownCharacter || errs[0].Ch != '.' {
		t.Fatalf("expected one UnknownCharacter('.') error, got %v", errs)
	}
}

func TestStringLiteralNoEscapeProcessing(t *testing.T) {
	s := scanner.New(`"a\nb"`)
	if tok := s.Next(); tok != token.String {
		t.Fatalf("got %s", tok)
	}
	if s.Literal() != `a\nb` {
		t.Fatalf("got %q, want literal backslash-n preserved verbatim", s.Literal())
	}
}

func TestUnterminatedStringIsASoftError(t *testing.T) {
	s := scanner.New(`"abc`)
	tok := s.Next()
	if tok != token.String {
		t.Fatalf("got %s", tok)
	}
	errs := s.Errors()
	if len(errs) != 1 || errs[0].Kind != scanner.UnterminatedString {
		t.Fatalf("expected one UnterminatedString error, got %v", errs)
	}
	// the lexer does not fail: a subsequent Next keeps returning Eof.
	if tok := s.Next(); tok != token.Eof {
		t.Fatalf("expected Eof after the unterminated string, got %s", tok)
	}
}

func TestUnknownCharacterIsSkippedAndRecorded(t *testing.T) {
	s := scanner.New("a#b")
	if tok := s.Next(); tok != token.Identifier || s.Literal() != "a" {
		t.Fatalf("got %s %q", tok, s.Literal())
	}
	if tok := s.Next(); tok != token.Identifier || s.Literal() != "b" {
		t.Fatalf("got %s %q", tok, s.Literal())
	}
	errs := s.Errors()
	if len(errs) != 1 || errs[0].Kind != scanner.UnknownCharacter || errs[0].Ch != '#' {
		t.Fatalf("expected one UnknownCharacter('#') error, got %v", errs)
	}
}

func TestEqualFamily(t *testing.T) {
	for _, c := range []struct {
		src  string
		want token.Token
	}{
		{"=", token.Assign},
		{"==", token.Equal},
		{"===", token.StrictEqual},
	} {
		s := scanner.New(c.src)
		if tok := s.Next(); tok != c.want {
			t.Fatalf("%s: got %s, want %s", c.src, tok, c.want)
		}
	}
}

func TestEofIsStickyAfterExhaustion(t *testing.T) {
	s := scanner.New("a")
	s.Next()
	if tok := s.Next(); tok != token.Eof {
		t.Fatalf("got %s", tok)
	}
	if tok := s.Next(); tok != token.Eof {
		t.Fatalf("expected Eof to stick, got %s", tok)
	}
}

func TestCheckpointRewind(t *testing.T) {
	s := scanner.New("a b c")
	s.Next() // a
	mark := s.Mark()
	s.Next() // b
	s.Next() // c
	s.Rewind(mark)
	if tok := s.Next(); tok != token.Identifier || s.Literal() != "b" {
		t.Fatalf("expected rewind to replay 'b', got %s %q", tok, s.Literal())
	}
}
