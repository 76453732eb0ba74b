package awscred

import (
	"errors"
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		store, err := Parse("")

		assertNoError(t, err)
		if store.Len() != 0 {
			t.Errorf("got %d profiles, want 0", store.Len())
		}
	})
	t.Run("single profile", func(t *testing.T) {
		text := fmt.Sprintf("[default]\naws_access_key_id = %s\naws_secret_access_key = %s\n", accessKeyID, secretAccessKey)

		store, err := Parse(text)

		assertNoError(t, err)
		p, ok := store.Lookup("default")
		assertBool(t, ok, true)
		got, _ := p.Get("aws_access_key_id")
		assertString(t, got, accessKeyID)
		got, _ = p.Get("aws_secret_access_key")
		assertString(t, got, secretAccessKey)
	})
	t.Run("comments and blank lines skipped", func(t *testing.T) {
		text := "# leading comment\n\n[work]\n; another comment\na = 1\n  # indented comment\n\nb = 2\n"

		store, err := Parse(text)

		assertNoError(t, err)
		p, _ := store.Lookup("work")
		assertKeys(t, p.Keys(), []string{"a", "b"})
	})
	t.Run("duplicate key last write wins in place", func(t *testing.T) {
		store, err := Parse("[p]\na = 1\nb = 2\na = 3\n")

		assertNoError(t, err)
		p, _ := store.Lookup("p")
		assertKeys(t, p.Keys(), []string{"a", "b"})
		got, _ := p.Get("a")
		assertString(t, got, "3")
	})
	t.Run("duplicate section merges", func(t *testing.T) {
		store, err := Parse("[p]\na = 1\n[q]\nc = 3\n[p]\nb = 2\na = 9\n")

		assertNoError(t, err)
		if store.Len() != 2 {
			t.Fatalf("got %d profiles, want 2", store.Len())
		}
		p, _ := store.Lookup("p")
		assertKeys(t, p.Keys(), []string{"a", "b"})
		got, _ := p.Get("a")
		assertString(t, got, "9")
	})
	t.Run("splits on first equals", func(t *testing.T) {
		store, err := Parse("[p]\nrole_arn = arn:aws:iam::123456789012:role/x=y\n")

		assertNoError(t, err)
		p, _ := store.Lookup("p")
		got, _ := p.Get("role_arn")
		assertString(t, got, "arn:aws:iam::123456789012:role/x=y")
	})
	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		store, err := Parse("  [ dev ]  \n   region   =   us-east-1   \n")

		assertNoError(t, err)
		p, ok := store.Lookup("dev")
		assertBool(t, ok, true)
		got, _ := p.Get("region")
		assertString(t, got, "us-east-1")
	})
	t.Run("empty value", func(t *testing.T) {
		store, err := Parse("[p]\naws_session_token =\n")

		assertNoError(t, err)
		p, _ := store.Lookup("p")
		got, ok := p.Get("aws_session_token")
		assertBool(t, ok, true)
		assertString(t, got, "")
	})
	t.Run("crlf line endings", func(t *testing.T) {
		store, err := Parse("[p]\r\na = 1\r\n")

		assertNoError(t, err)
		p, _ := store.Lookup("p")
		got, _ := p.Get("a")
		assertString(t, got, "1")
	})
}

func TestParseErrors(t *testing.T) {
	t.Run("key outside section", func(t *testing.T) {
		_, err := Parse("a = 1\n")

		assertErrorIs(t, err, ErrKeyOutsideSection)
		assertParseErrorLine(t, err, 1)
	})
	t.Run("empty section header", func(t *testing.T) {
		_, err := Parse("[]\n")

		assertErrorIs(t, err, ErrInvalidSectionHeader)
		assertParseErrorLine(t, err, 1)
	})
	t.Run("whitespace-only section header", func(t *testing.T) {
		_, err := Parse("[   ]\n")

		assertErrorIs(t, err, ErrInvalidSectionHeader)
	})
	t.Run("malformed line carries line number", func(t *testing.T) {
		_, err := Parse("[p]\na = 1\nnot an assignment\n")

		assertErrorIs(t, err, ErrMalformedLine)
		assertParseErrorLine(t, err, 3)
	})
	t.Run("unterminated section header", func(t *testing.T) {
		_, err := Parse("[p\n")

		assertErrorIs(t, err, ErrMalformedLine)
	})
	t.Run("stops at first error", func(t *testing.T) {
		_, err := Parse("bogus\n[]\n")

		assertErrorIs(t, err, ErrMalformedLine)
		assertParseErrorLine(t, err, 1)
	})
}

func assertParseErrorLine(t *testing.T, err error, line int) {
	t.Helper()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if perr.Line != line {
		t.Errorf("got line %d, want %d", perr.Line, line)
	}
}
