// Package convert orchestrates the pipeline: extract text from the source
// PDF, build the document model, run the accessibility pass, and write the
// EPUB.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thywilljoshua/pdf-to-epub/internal/accessibility"
	"github.com/thywilljoshua/pdf-to-epub/internal/epub"
)

func Run(ctx context.Context, pdfPath string, cfg Config) (Result, error) {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Result{}, err
	}

	pages, err := extractTextPerPage(pdfPath)
	if err != nil {
		return Result{}, fmt.Errorf("extracting text: %w", err)
	}
	fmt.Printf("extracted %d pages\n", len(pages))

	s := buildStructure(pages, cfg)

	enh := accessibility.Enhancer{Describer: cfg.Describer}
	rep, err := enh.Enhance(ctx, &s)
	if err != nil {
		return Result{}, err
	}
	if rep.AltFlagged > 0 {
		fmt.Printf("%d image(s) flagged for alt text review\n", rep.AltFlagged)
	}

	name := slugify(s.Title)
	if name == "" {
		name = "document"
	}
	outFile := filepath.Join(cfg.OutDir, name+".epub")
	if err := epub.Write(outFile, &s); err != nil {
		return Result{}, fmt.Errorf("writing epub: %w", err)
	}

	res := Result{
		Pages:         len(s.Pages),
		Images:        len(s.Images),
		Accessibility: rep,
		OutFile:       outFile,
	}
	for _, p := range s.Pages {
		res.TextBlocks += len(p.TextBlocks)
		res.Images += len(p.ImageBlocks)
	}
	return res, nil
}
