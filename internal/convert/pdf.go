package convert

import (
	"fmt"
	"os"
	"sort"
	"strings"

	rpdf "rsc.io/pdf"
)

// extractTextPerPage pulls the raw text out of every page, grouping glyph
// runs into lines by vertical position. Pages whose content streams cannot
// be decoded come back empty rather than failing the whole document.
func extractTextPerPage(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	r, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	n := r.NumPage()
	pages := make([]string, n)
	for i := 1; i <= n; i++ {
		pages[i-1] = pageText(r.Page(i))
	}
	return pages, nil
}

func pageText(p rpdf.Page) string {
	if p.V.IsNull() {
		return ""
	}
	var texts []rpdf.Text
	// rsc.io/pdf panics on some malformed content streams; treat those
	// pages as empty.
	func() {
		defer func() { _ = recover() }()
		texts = p.Content().Text
	}()
	if len(texts) == 0 {
		return ""
	}
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})
	var b strings.Builder
	lastY := texts[0].Y
	lastEnd := texts[0].X
	for i, t := range texts {
		if i > 0 {
			switch {
			case lastY-t.Y > 2:
				b.WriteByte('\n')
			case t.X-lastEnd > 1:
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		lastY = t.Y
		lastEnd = t.X + t.W
	}
	return b.String()
}
