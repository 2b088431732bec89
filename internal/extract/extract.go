package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	ContentTypePlainText = "text/plain"
	ContentTypePDF       = "application/pdf"
	ContentTypeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedContentTypes lists the resume formats the upload endpoint accepts.
var AllowedContentTypes = []string{ContentTypePlainText, ContentTypePDF, ContentTypeDocx}

func ContentTypeAllowed(contentType string) bool {
	for _, t := range AllowedContentTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// ResumeText extracts plain text from an uploaded resume.
func ResumeText(contentType string, data []byte) (string, error) {
	switch contentType {
	case ContentTypePlainText:
		return string(data), nil
	case ContentTypePDF:
		return pdfText(data)
	case ContentTypeDocx:
		return docxText(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", contentType)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
