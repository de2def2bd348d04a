package knowledge

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// LoadErrorKind classifies corpus load failures.
type LoadErrorKind string

const (
	LoadFileMissing   LoadErrorKind = "file_missing"
	LoadFileMalformed LoadErrorKind = "file_malformed"
)

// LoadError reports a failure to load the knowledge base file. Callers
// are expected to treat it as a degradation, not a fatal error: the
// service runs with an empty corpus.
type LoadError struct {
	Kind LoadErrorKind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading knowledge base %s: %s", e.Path, e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadReport summarizes a corpus load.
type LoadReport struct {
	Loaded  int
	Skipped int
}

// Load reads a newline-delimited JSON knowledge base. Each line must be
// a JSON object with a string "text" field; other fields pass through in
// Document.Meta. Malformed lines and lines without usable text are
// skipped with a warning rather than aborting the whole load. A missing
// or unreadable file returns a LoadError alongside an empty corpus.
func Load(path string, logger *zap.Logger) ([]Document, LoadReport, error) {
	var report LoadReport

	f, err := os.Open(path)
	if err != nil {
		kind := LoadFileMalformed
		if os.IsNotExist(err) {
			kind = LoadFileMissing
		}
		return nil, report, &LoadError{Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	var docs []Document
	scanner := bufio.NewScanner(f)
	// Knowledge entries can be long; the default 64K line limit is too tight.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			report.Skipped++
			logger.Warn("skipping malformed knowledge base line",
				zap.String("path", path),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		text, ok := raw["text"].(string)
		if !ok || strings.TrimSpace(text) == "" {
			report.Skipped++
			logger.Warn("skipping knowledge base line without text field",
				zap.String("path", path),
				zap.Int("line", lineNo))
			continue
		}

		delete(raw, "text")
		docs = append(docs, Document{Text: text, Meta: raw})
		report.Loaded++
	}

	if err := scanner.Err(); err != nil {
		return nil, LoadReport{}, &LoadError{Kind: LoadFileMalformed, Path: path, Err: err}
	}

	return docs, report, nil
}
