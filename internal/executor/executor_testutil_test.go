package executor

import (
	"testing"

	language "github.com/oakwire/gqlexec/internal/language"
)

func mustParseQuery(t *testing.T, q string) *language.QueryDocument {
	t.Helper()
	doc, err := language.ParseQuery(q)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return doc
}

// selectionOf returns the sole operation's top-level selection set from a
// single-operation document, for tests that exercise SelectionExecutor
// directly rather than through Request.
func selectionOf(t *testing.T, doc *language.QueryDocument) language.SelectionSet {
	t.Helper()
	if len(doc.Operations) != 1 {
		t.Fatalf("expected exactly one operation, got %d", len(doc.Operations))
	}
	return doc.Operations[0].SelectionSet
}
