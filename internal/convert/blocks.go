package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

// Patterns for block classification: footnote markers, figure captions,
// admonitions, list markers, numbered and all-caps headings.
var (
	footnoteRe        = regexp.MustCompile(`^\[\d+\]\s+\S`)
	captionLineRe     = regexp.MustCompile(`^(?:Figure|Table|Chart|Diagram)\s+\d+[:.]?\s`)
	calloutRe         = regexp.MustCompile(`^(?:NOTE|WARNING|CAUTION|TIP|IMPORTANT)[:!]\s`)
	bulletRe          = regexp.MustCompile(`^[-*\x{2022}\x{00B7}]\s+\S`)
	orderedItemRe     = regexp.MustCompile(`^\d{1,3}[.)]\s+\S`)
	numberedHeadingRe = regexp.MustCompile(`^\d+(?:\.\d+)*\s+[A-Za-z]`)
	upperHeadingRe    = regexp.MustCompile(`^[A-Z][A-Z0-9 ,\-/()]{3,}$`)
)

// classifyBlock assigns a structural type to one paragraph. The second
// result is the heading level (dot depth for numbered headings), zero for
// everything else.
func classifyBlock(text string) (doc.BlockType, int) {
	lines := strings.Split(text, "\n")
	first := strings.TrimSpace(lines[0])

	switch {
	case footnoteRe.MatchString(first):
		return doc.BlockFootnote, 0
	case captionLineRe.MatchString(first):
		return doc.BlockCaption, 0
	case calloutRe.MatchString(first):
		return doc.BlockCallout, 0
	}

	if allMatch(lines, bulletRe) {
		if len(lines) == 1 {
			return doc.BlockListItem, 0
		}
		return doc.BlockUnorderedList, 0
	}
	if allMatch(lines, orderedItemRe) {
		if len(lines) == 1 {
			return doc.BlockListItem, 0
		}
		return doc.BlockOrderedList, 0
	}

	if len(lines) == 1 {
		if numberedHeadingRe.MatchString(first) && len(first) < 80 && !strings.HasSuffix(first, ".") {
			num := strings.Fields(first)[0]
			return doc.BlockHeading, strings.Count(num, ".") + 1
		}
		if upperHeadingRe.MatchString(first) && len(first) < 80 {
			return doc.BlockHeading, 1
		}
	}
	return doc.BlockParagraph, 0
}

func allMatch(lines []string, re *regexp.Regexp) bool {
	for _, ln := range lines {
		if !re.MatchString(strings.TrimSpace(ln)) {
			return false
		}
	}
	return len(lines) > 0
}

// splitParagraphs breaks page text into cleaned paragraph chunks on blank
// lines, keeping line breaks inside a chunk so list blocks stay detectable.
func splitParagraphs(text string) []string {
	var out []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, ln := range strings.Split(text, "\n") {
		ln = normalizeText(ln)
		if ln == "" {
			flush()
			continue
		}
		cur = append(cur, ln)
	}
	flush()
	return out
}

// buildStructure turns per-page text into the document model the
// accessibility stage operates on. Block IDs are stable within a page and
// never reassigned downstream.
func buildStructure(pages []string, cfg Config) doc.DocumentStructure {
	s := doc.DocumentStructure{Title: cfg.Title, Language: cfg.Language}
	if s.Language == "" {
		s.Language = "en"
	}
	for i, text := range pages {
		page := doc.PageStructure{Number: i + 1}
		for bi, para := range splitParagraphs(text) {
			bt, lvl := classifyBlock(para)
			page.TextBlocks = append(page.TextBlocks, doc.TextBlock{
				ID:    fmt.Sprintf("p%d-b%d", i+1, bi+1),
				Type:  bt,
				Text:  para,
				Level: lvl,
			})
		}
		s.Pages = append(s.Pages, page)
	}
	if cfg.CoverImage != "" {
		s.Images = append(s.Images, doc.ImageReference{ID: "cover", Type: doc.ImageFigure, Path: cfg.CoverImage})
	}
	if s.Title == "" {
		s.Title = deriveTitle(s.Pages)
	}
	return s
}

// deriveTitle uses the first heading in the document, or a fixed default
// when no heading exists.
func deriveTitle(pages []doc.PageStructure) string {
	for _, p := range pages {
		for _, b := range p.TextBlocks {
			if b.Type == doc.BlockHeading {
				return b.Text
			}
		}
	}
	return "Untitled"
}
