package doctext

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solargrid-io/lease-tracker/constants"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func TestExtractPDF(t *testing.T) {
	fr := &fakeRunner{stdout: []byte("page one text\fpage two text")}
	e := NewExtractor(Config{Pdftotext: "pdftotext"}, nil)
	e.runner = fr

	res, err := e.Extract(context.Background(), "/tmp/lease.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.SourceType != constants.PDF || res.Method != "pdf-text" {
		t.Errorf("source=%q method=%q", res.SourceType, res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("pages = %d, want 2", res.Pages)
	}
	if !strings.Contains(res.Text, "page two text") {
		t.Errorf("text missing second page: %q", res.Text)
	}
	if fr.gotName != "pdftotext" {
		t.Errorf("ran %q, want pdftotext", fr.gotName)
	}
	want := []string{"-layout", "-enc", "UTF-8", "-eol", "unix", "/tmp/lease.pdf", "-"}
	if len(fr.gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", fr.gotArgs, want)
	}
	for i := range want {
		if fr.gotArgs[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, fr.gotArgs[i], want[i])
		}
	}
}

func TestExtractPDFPageLimit(t *testing.T) {
	fr := &fakeRunner{stdout: []byte("text")}
	e := NewExtractor(Config{MaxPages: 5}, nil)
	e.runner = fr

	if _, err := e.Extract(context.Background(), "a.pdf"); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	joined := strings.Join(fr.gotArgs, " ")
	if !strings.Contains(joined, "-l 5") {
		t.Errorf("args %q missing page limit", joined)
	}
}

func TestExtractPDFFailure(t *testing.T) {
	fr := &fakeRunner{stderr: []byte("Syntax Error: bad xref"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = fr

	res, err := e.Extract(context.Background(), "broken.pdf")
	if err == nil {
		t.Fatal("want error from failing pdftotext")
	}
	if len(res.Warnings) == 0 || !strings.Contains(res.Warnings[0], "Syntax Error") {
		t.Errorf("warnings = %v, want stderr captured", res.Warnings)
	}
}

func TestExtractTXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lease.txt")
	if err := os.WriteFile(path, []byte("annual rent of $50,000"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "annual rent of $50,000" {
		t.Errorf("text = %q", res.Text)
	}
	if res.SourceType != constants.TXT || res.Pages != 1 {
		t.Errorf("source=%q pages=%d", res.SourceType, res.Pages)
	}
}

func TestExtractDOCX(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>SOLAR GROUND LEASE</w:t></w:r></w:p>
    <w:p><w:r><w:t>Annual rent of $42,000 </w:t></w:r><w:r><w:t>for a term of 25 years.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	dir := t.TempDir()
	path := filepath.Join(dir, "lease.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(body)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.SourceType != constants.DOCX || res.Method != "docx-xml" {
		t.Errorf("source=%q method=%q", res.SourceType, res.Method)
	}
	if !strings.Contains(res.Text, "SOLAR GROUND LEASE\n") {
		t.Errorf("paragraph break missing: %q", res.Text)
	}
	if !strings.Contains(res.Text, "Annual rent of $42,000 for a term of 25 years.") {
		t.Errorf("runs not joined within paragraph: %q", res.Text)
	}
}

func TestExtractDOCXMissingBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hollow.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	if _, err := zw.Create("word/styles.xml"); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), path); err == nil {
		t.Fatal("want error for docx without word/document.xml")
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	_, err := e.Extract(context.Background(), "scan.tiff")
	if err == nil {
		t.Fatal("want error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("err = %v", err)
	}
}

func TestExtractEmptyTextWarns(t *testing.T) {
	fr := &fakeRunner{stdout: []byte("  \n\f ")}
	e := NewExtractor(Config{}, nil)
	e.runner = fr

	res, err := e.Extract(context.Background(), "blank.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Empty() {
		t.Error("Empty() = false for whitespace-only text")
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "no text") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want no-text warning", res.Warnings)
	}
}
