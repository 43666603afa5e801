package extract

import (
	"archive/zip"
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func newTestExtractor() *Extractor {
	return &Extractor{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestExtractPlainTextPassthrough(t *testing.T) {
	e := newTestExtractor()

	got, err := e.Extract([]byte("hello world"), "text/plain")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("got %q", got)
	}
}

func TestExtractUnknownMimeFallsBack(t *testing.T) {
	e := newTestExtractor()

	got, err := e.Extract([]byte("raw bytes"), "application/x-mystery")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "raw bytes" {
		t.Errorf("got %q", got)
	}
}

func TestExtractLegacyWordFallsBack(t *testing.T) {
	e := newTestExtractor()

	// no real extraction for the legacy binary format; raw decode
	got, err := e.Extract([]byte("doc content"), "application/msword")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "doc content" {
		t.Errorf("got %q", got)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	e := newTestExtractor()

	docx := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>first paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := e.Extract(docx, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(got, "first paragraph") {
		t.Errorf("missing first paragraph in %q", got)
	}
	if !strings.Contains(got, "second paragraph") {
		t.Errorf("run text not joined within paragraph: %q", got)
	}
	if !strings.Contains(got, "first paragraph\n") {
		t.Errorf("paragraph boundary missing newline: %q", got)
	}
}

func TestExtractDocxWithoutDocumentXML(t *testing.T) {
	e := newTestExtractor()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, _ := zw.Create("word/other.xml")
	f.Write([]byte("<x/>"))
	zw.Close()

	_, err := e.Extract(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if err == nil {
		t.Fatal("expected error for docx without word/document.xml")
	}
}
