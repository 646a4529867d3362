package epub

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

const xhtmlPreamble = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<!DOCTYPE html>\n"

func el(tag string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func xhtmlRoot(title, lang string) (root, body *html.Node) {
	root = el("html")
	attr(root, "xmlns", "http://www.w3.org/1999/xhtml")
	attr(root, "xmlns:epub", "http://www.idpf.org/2007/ops")
	attr(root, "xml:lang", lang)
	attr(root, "lang", lang)
	head := el("head", attr(el("meta"), "charset", "utf-8"), el("title", textNode(title)))
	body = el("body")
	root.AppendChild(head)
	root.AppendChild(body)
	return root, body
}

func renderDocument(root *html.Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xhtmlPreamble)
	if err := html.Render(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderPage renders one page in its verified reading order. List blocks
// that are adjacent in the order share one list element.
func renderPage(p *doc.PageStructure, lang string) ([]byte, error) {
	root, body := xhtmlRoot(fmt.Sprintf("Page %d", p.Number), lang)
	section := attr(el("section"), "epub:type", "bodymatter")
	body.AppendChild(section)

	var list *html.Node
	var listTag string
	for _, b := range orderedBlocks(p) {
		switch b.Type {
		case doc.BlockListItem, doc.BlockOrderedList, doc.BlockUnorderedList:
			tag := "ul"
			if b.Type == doc.BlockOrderedList {
				tag = "ol"
			}
			if list == nil || listTag != tag {
				list = el(tag)
				listTag = tag
				section.AppendChild(list)
			}
			for _, item := range listItems(b.Text) {
				list.AppendChild(el("li", textNode(item)))
			}
		default:
			list, listTag = nil, ""
			section.AppendChild(blockNode(b))
		}
	}

	for i := range p.ImageBlocks {
		section.AppendChild(imageNode(&p.ImageBlocks[i]))
	}
	return renderDocument(root)
}

// orderedBlocks resolves the page's reading order to blocks. The
// accessibility stage guarantees an order exists; identifiers it does not
// cover (a stale partial order) fall back to being skipped rather than
// invented.
func orderedBlocks(p *doc.PageStructure) []doc.TextBlock {
	if p.ReadingOrder == nil {
		return p.TextBlocks
	}
	out := make([]doc.TextBlock, 0, len(p.ReadingOrder.BlockIDs))
	for _, id := range p.ReadingOrder.BlockIDs {
		if b := p.Block(id); b != nil {
			out = append(out, *b)
		}
	}
	return out
}

// blockNode maps a text block's semantic role to its XHTML element.
func blockNode(b doc.TextBlock) *html.Node {
	switch b.Role {
	case doc.RoleHeading:
		lvl := b.Level
		if lvl < 1 {
			lvl = 2
		}
		if lvl > 6 {
			lvl = 6
		}
		return el("h"+strconv.Itoa(lvl), textNode(b.Text))
	case doc.RoleCaption:
		return attr(el("p", textNode(b.Text)), "class", "caption")
	case doc.RoleNote:
		aside := el("aside", textNode(b.Text))
		if b.Type == doc.BlockFootnote {
			attr(aside, "epub:type", "footnote")
			return attr(aside, "role", "doc-footnote")
		}
		return attr(aside, "role", "note")
	case doc.RoleComplementary:
		return attr(el("aside", textNode(b.Text)), "role", "complementary")
	default:
		return el("p", textNode(b.Text))
	}
}

func imageNode(img *doc.ImageBlock) *html.Node {
	fig := el("figure")
	im := el("img")
	attr(im, "src", imageHref(img.ID, img.Path))
	attr(im, "alt", img.Alt)
	if img.Type == doc.ImageDecorative {
		attr(im, "role", "presentation")
	}
	fig.AppendChild(im)
	if img.Caption != "" {
		fig.AppendChild(el("figcaption", textNode(img.Caption)))
	}
	return fig
}

func imageHref(id, path string) string {
	if path == "" {
		return "images/" + id
	}
	return "images/" + filepath.Base(path)
}

var listMarkerRe = regexp.MustCompile(`^(?:[-*\x{2022}\x{00B7}]|\d{1,3}[.)])\s+`)

// listItems strips list markers and returns one entry per line.
func listItems(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, listMarkerRe.ReplaceAllString(ln, ""))
	}
	return out
}
