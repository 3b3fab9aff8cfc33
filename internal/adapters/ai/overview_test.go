package ai

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"webchain/internal/core/domain"
	"webchain/internal/platform/errors"
	"webchain/internal/testutil"
)

// fakeSummarizer registra las URLs recibidas
type fakeSummarizer struct {
	got  []string
	text string
	err  error
}

func (f *fakeSummarizer) Summarize(_ context.Context, urls []string) (string, error) {
	f.got = urls
	return f.text, f.err
}

func reportFor(dir string) domain.DomainReport {
	return domain.DomainReport{
		Target:    domain.Target{Name: "example.com"},
		OutputDir: dir,
	}
}

func TestOverviewer_Generate(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLines(t, dir, "katana.txt", "https://example.com/login", "", "https://example.com/api/v1")
	fake := &fakeSummarizer{text: `{"summary":"two endpoints"}`}

	path, err := NewOverviewer(fake, 0, testutil.NewTestLogger()).Generate(context.Background(), reportFor(dir))

	testutil.AssertNoError(t, err, "generate")
	testutil.AssertEqual(t, path, filepath.Join(dir, OverviewFile), "path")
	testutil.AssertEqual(t, fake.got, []string{"https://example.com/login", "https://example.com/api/v1"}, "blank lines dropped")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read overview")
	testutil.AssertEqual(t, string(data), `{"summary":"two endpoints"}`, "written verbatim")
}

func TestOverviewer_NoURLs(t *testing.T) {
	for name, setup := range map[string]func(dir string){
		"empty file":   func(dir string) { testutil.WriteLines(t, dir, "katana.txt") },
		"missing file": func(string) {},
	} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			setup(dir)
			fake := &fakeSummarizer{}

			_, err := NewOverviewer(fake, 0, testutil.NewTestLogger()).Generate(context.Background(), reportFor(dir))

			testutil.AssertTrue(t, errors.Is(err, errors.ErrNoURLs), "ErrNoURLs")
			testutil.AssertTrue(t, fake.got == nil, "summarizer never called")
			_, statErr := os.Stat(filepath.Join(dir, OverviewFile))
			testutil.AssertTrue(t, os.IsNotExist(statErr), "no overview written")
		})
	}
}

func TestOverviewer_Truncates(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLines(t, dir, "katana.txt", "https://a/", "https://b/", "https://c/")
	fake := &fakeSummarizer{text: "{}"}

	_, err := NewOverviewer(fake, 2, testutil.NewTestLogger()).Generate(context.Background(), reportFor(dir))

	testutil.AssertNoError(t, err, "generate")
	testutil.AssertEqual(t, fake.got, []string{"https://a/", "https://b/"}, "first maxURLs")
}

func TestOverviewer_PrioritizesWhenOverLimit(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLines(t, dir, "katana.txt",
		"https://example.com/",
		"https://example.com/item/1",
		"https://example.com/item/2",
		"https://example.com/login",
	)
	fake := &fakeSummarizer{text: "{}"}

	_, err := NewOverviewer(fake, 2, testutil.NewTestLogger()).Generate(context.Background(), reportFor(dir))

	testutil.AssertNoError(t, err, "generate")
	testutil.AssertEqual(t, fake.got, []string{"https://example.com/login", "https://example.com/"}, "auth path ranked first")
}

func TestOverviewer_SummarizerError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteLines(t, dir, "katana.txt", "https://example.com/")
	fake := &fakeSummarizer{err: errors.ErrServiceUnavailable}

	_, err := NewOverviewer(fake, 0, testutil.NewTestLogger()).Generate(context.Background(), reportFor(dir))

	testutil.AssertTrue(t, errors.Is(err, errors.ErrServiceUnavailable), "error propagated")
	_, statErr := os.Stat(filepath.Join(dir, OverviewFile))
	testutil.AssertTrue(t, os.IsNotExist(statErr), "no overview on failure")
}
