package knowledge

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func writeCorpus(t *testing.T, lines string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.jsonl")
	if err := os.WriteFile(path, []byte(lines), 0644); err != nil {
		t.Fatalf("writing corpus: %v", err)
	}
	return path
}

func TestLoadParsesDocuments(t *testing.T) {
	path := writeCorpus(t, `{"text":"how to reset a password","category":"account"}
{"text":"billing and invoices"}
`)

	docs, report, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Loaded != 2 || report.Skipped != 0 {
		t.Errorf("report = %+v, want 2 loaded, 0 skipped", report)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Text != "how to reset a password" {
		t.Errorf("unexpected first document text %q", docs[0].Text)
	}
	if docs[0].Meta["category"] != "account" {
		t.Errorf("expected category metadata to pass through, got %v", docs[0].Meta)
	}
}

func TestLoadMissingFile(t *testing.T) {
	docs, _, err := Load(filepath.Join(t.TempDir(), "absent.jsonl"), zap.NewNop())
	if docs != nil {
		t.Errorf("expected empty corpus, got %d documents", len(docs))
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if loadErr.Kind != LoadFileMissing {
		t.Errorf("expected kind %q, got %q", LoadFileMissing, loadErr.Kind)
	}
}

func TestLoadSkipsBadLines(t *testing.T) {
	path := writeCorpus(t, `{"text":"good one"}
this is not json
{"no_text_field": true}
{"text":""}

{"text":"good two"}
`)

	docs, report, err := Load(path, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Text != "good one" || docs[1].Text != "good two" {
		t.Errorf("unexpected documents: %q, %q", docs[0].Text, docs[1].Text)
	}
	if report.Loaded != 2 {
		t.Errorf("expected 2 loaded, got %d", report.Loaded)
	}
	// Non-JSON line, object without text, and empty text all skip; the
	// blank line is ignored entirely.
	if report.Skipped != 3 {
		t.Errorf("expected 3 skipped, got %d", report.Skipped)
	}
}

func corpus(texts ...string) []Document {
	docs := make([]Document, len(texts))
	for i, txt := range texts {
		docs[i] = Document{Text: txt}
	}
	return docs
}

func TestRetrieveRankingAndTieStability(t *testing.T) {
	// Overlap scores against the query: 3, 1, 3, 0 in corpus order.
	docs := corpus(
		"alpha beta gamma",       // 3
		"alpha unrelated things", // 1
		"gamma beta alpha extra", // 3
		"nothing in common here", // 0
	)

	r := NewRetriever(docs, 2, true, zap.NewNop())
	got := r.Retrieve("alpha beta gamma")

	want := []string{"alpha beta gamma", "gamma beta alpha extra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Retrieve = %v, want %v (ties must keep corpus order)", got, want)
	}
}

func TestRetrieveDropsZeroScoreDocuments(t *testing.T) {
	docs := corpus("alpha beta", "totally different words")
	r := NewRetriever(docs, 10, true, zap.NewNop())

	got := r.Retrieve("alpha")
	if len(got) != 1 || got[0] != "alpha beta" {
		t.Errorf("Retrieve = %v, want only the matching document", got)
	}
}

func TestRetrieveDisabled(t *testing.T) {
	docs := corpus("alpha beta gamma")
	r := NewRetriever(docs, 3, false, zap.NewNop())

	if got := r.Retrieve("alpha"); len(got) != 0 {
		t.Errorf("expected no results when disabled, got %v", got)
	}
}

func TestRetrieveEmptyCorpus(t *testing.T) {
	r := NewRetriever(nil, 3, true, zap.NewNop())
	if got := r.Retrieve("alpha"); len(got) != 0 {
		t.Errorf("expected no results for empty corpus, got %v", got)
	}
}

func TestRetrieveCaseInsensitive(t *testing.T) {
	docs := corpus("ALPHA Beta")
	r := NewRetriever(docs, 3, true, zap.NewNop())

	got := r.Retrieve("alpha BETA")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestRetrieveDeterministic(t *testing.T) {
	docs := corpus(
		"alpha beta",
		"beta gamma",
		"alpha gamma",
		"alpha beta gamma",
	)
	r := NewRetriever(docs, 3, true, zap.NewNop())

	first := r.Retrieve("alpha beta gamma")
	for i := 0; i < 10; i++ {
		if got := r.Retrieve("alpha beta gamma"); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestRetrieveHonorsTopK(t *testing.T) {
	docs := corpus("alpha one", "alpha two", "alpha three", "alpha four")
	r := NewRetriever(docs, 2, true, zap.NewNop())

	if got := r.Retrieve("alpha"); len(got) != 2 {
		t.Errorf("expected 2 results, got %d", len(got))
	}
}

func TestTokenize(t *testing.T) {
	words := tokenize("  Hello   world hello\tWORLD ")
	if len(words) != 2 {
		t.Errorf("expected 2 distinct words, got %d (%v)", len(words), words)
	}
	if _, ok := words["hello"]; !ok {
		t.Error("expected lowercase 'hello' in token set")
	}
}
