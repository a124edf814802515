package doctext

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/solargrid-io/lease-tracker/constants"
)

// docxDocument maps the subset of WordprocessingML we care about:
// paragraphs and the text runs inside them.
type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []struct {
		Texts []string `xml:"t"`
	} `xml:"r"`
}

func (e *Extractor) extractDOCX(path string) (TextExtractionResult, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return TextExtractionResult{SourceType: constants.DOCX}, fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	var doc docxDocument
	found := false
	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return TextExtractionResult{SourceType: constants.DOCX}, fmt.Errorf("open docx body: %w", err)
		}
		decodeErr := xml.NewDecoder(rc).Decode(&doc)
		rc.Close()
		if decodeErr != nil {
			return TextExtractionResult{SourceType: constants.DOCX}, fmt.Errorf("decode docx body: %w", decodeErr)
		}
		found = true
		break
	}
	if !found {
		return TextExtractionResult{SourceType: constants.DOCX}, fmt.Errorf("docx missing word/document.xml")
	}

	var b strings.Builder
	for _, p := range doc.Body.Paragraphs {
		for _, run := range p.Runs {
			for _, t := range run.Texts {
				b.WriteString(t)
			}
		}
		b.WriteString("\n")
	}
	return TextExtractionResult{
		Text:       b.String(),
		Pages:      1,
		SourceType: constants.DOCX,
		Method:     "docx-xml",
	}, nil
}
