package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
	"github.com/sunzid02/portfolio-chat-api/internal/domain/kbModel"
)

// ResolveSources reads every configured source up front. Any missing
// or unreadable source fails the whole resolution, before the index is
// touched.
func ResolveSources(profilePath string, resumePath string) ([]kbModel.SourceDocument, error) {
	profileText, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("reading profile source: %w", err)
	}

	resumeText, err := extractResumeText(resumePath)
	if err != nil {
		return nil, fmt.Errorf("reading resume source: %w", err)
	}

	return []kbModel.SourceDocument{
		{Id: "profile", Label: filepath.Base(profilePath), Text: string(profileText)},
		{Id: "resume", Label: filepath.Base(resumePath), Text: resumeText},
	}, nil
}

func extractResumeText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".txt", ".rtf", ".odt":
		return cat.File(path)
	default:
		return "", fmt.Errorf("unsupported resume type: %s", ext)
	}
}

func extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []string
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			logger.Error("Error parsing page content", "page", i, "error", err)
			continue
		}
		pages = append(pages, content)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return "", errors.New("no extractable text in pdf")
	}
	return text, nil
}

// protectExtract guards against the pdf library hanging on a broken
// page object.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
