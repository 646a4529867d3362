package epub

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

type navEntry struct {
	Title    string
	Href     string
	Level    int
	Children []navEntry
}

var titleCaser = cases.Title(language.English)

// navLabel cleans a heading for use as a navigation label. All-caps PDF
// headings read badly in a table of contents, so those are title-cased.
func navLabel(s string) string {
	s = strings.TrimSpace(s)
	if s != "" && s == strings.ToUpper(s) && s != strings.ToLower(s) {
		return titleCaser.String(strings.ToLower(s))
	}
	return s
}

// collectNav builds one flat entry per heading block; pages without any
// heading get a page-number entry so every spine item stays reachable.
func collectNav(s *doc.DocumentStructure) []navEntry {
	var flat []navEntry
	for _, p := range s.Pages {
		found := false
		for _, b := range p.TextBlocks {
			if b.Type != doc.BlockHeading {
				continue
			}
			lvl := b.Level
			if lvl < 1 {
				lvl = 1
			}
			flat = append(flat, navEntry{Title: navLabel(b.Text), Href: pageFile(p.Number), Level: lvl})
			found = true
		}
		if !found && len(p.TextBlocks) > 0 {
			flat = append(flat, navEntry{Title: fmt.Sprintf("Page %d", p.Number), Href: pageFile(p.Number), Level: 1})
		}
	}
	return nestEntries(flat)
}

// nestEntries turns the flat, level-annotated entry list into a tree,
// keeping a stack of the last entry seen at each level.
func nestEntries(flat []navEntry) []navEntry {
	var roots []navEntry
	var stack []*navEntry
	for _, e := range flat {
		for len(stack) > 0 && stack[len(stack)-1].Level >= e.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
			stack = append(stack, &roots[len(roots)-1])
			continue
		}
		p := stack[len(stack)-1]
		p.Children = append(p.Children, e)
		stack = append(stack, &p.Children[len(p.Children)-1])
	}
	return roots
}

// renderNav renders the EPUB 3 navigation document.
func renderNav(s *doc.DocumentStructure) ([]byte, error) {
	root, body := xhtmlRoot(s.Title, s.Language)
	nav := el("nav")
	attr(nav, "epub:type", "toc")
	attr(nav, "role", "doc-toc")
	nav.AppendChild(el("h1", textNode("Contents")))
	nav.AppendChild(navList(collectNav(s)))
	body.AppendChild(nav)
	return renderDocument(root)
}

func navList(entries []navEntry) *html.Node {
	ol := el("ol")
	for _, e := range entries {
		li := el("li", attr(el("a", textNode(e.Title)), "href", e.Href))
		if len(e.Children) > 0 {
			li.AppendChild(navList(e.Children))
		}
		ol.AppendChild(li)
	}
	return ol
}
