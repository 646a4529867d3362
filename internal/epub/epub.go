// Package epub writes an enhanced document structure as an EPUB 3
// container. It is the downstream consumer of the accessibility stage: it
// expects every image to carry alt text and every page a reading order.
package epub

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

func pageFile(n int) string {
	return fmt.Sprintf("page-%03d.xhtml", n)
}

// Write renders s into a complete EPUB at path.
func Write(path string, s *doc.DocumentStructure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	// mimetype must be the first entry and stored uncompressed.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mt.Write([]byte("application/epub+zip")); err != nil {
		return err
	}
	if err := addFile(zw, "META-INF/container.xml", []byte(containerXML)); err != nil {
		return err
	}

	items := []opfItem{{ID: "nav", Href: "nav.xhtml", MediaType: "application/xhtml+xml", Properties: "nav"}}
	var spine []string

	lang := s.Language
	if lang == "" {
		lang = "en"
	}
	for i := range s.Pages {
		p := &s.Pages[i]
		content, err := renderPage(p, lang)
		if err != nil {
			return fmt.Errorf("rendering page %d: %w", p.Number, err)
		}
		name := pageFile(p.Number)
		if err := addFile(zw, "OEBPS/"+name, content); err != nil {
			return err
		}
		id := fmt.Sprintf("page%03d", p.Number)
		items = append(items, opfItem{ID: id, Href: name, MediaType: "application/xhtml+xml"})
		spine = append(spine, id)
	}

	nav, err := renderNav(s)
	if err != nil {
		return fmt.Errorf("rendering nav: %w", err)
	}
	if err := addFile(zw, "OEBPS/nav.xhtml", nav); err != nil {
		return err
	}

	items = append(items, packImages(zw, s)...)

	opf, err := buildOPF(s.Title, lang, "urn:pdf2epub:"+sanitizeID(s.Title), items, spine, time.Now())
	if err != nil {
		return err
	}
	if err := addFile(zw, "OEBPS/content.opf", opf); err != nil {
		return err
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

// packImages copies every image file that exists on disk into the
// container. The cover (first document-level image) is marked as such.
// Unreadable images are skipped; their alt text still renders.
func packImages(zw *zip.Writer, s *doc.DocumentStructure) []opfItem {
	var items []opfItem
	seen := map[string]bool{}
	add := func(id, path string, cover bool) {
		if path == "" {
			return
		}
		href := imageHref(id, path)
		if seen[href] {
			return
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return
		}
		if err := addFile(zw, "OEBPS/"+href, b); err != nil {
			return
		}
		seen[href] = true
		item := opfItem{ID: "img-" + id, Href: href, MediaType: mediaTypeByExt(path)}
		if cover {
			item.Properties = "cover-image"
		}
		items = append(items, item)
	}
	for i, img := range s.Images {
		add(img.ID, img.Path, i == 0)
	}
	for _, p := range s.Pages {
		for _, img := range p.ImageBlocks {
			add(img.ID, img.Path, false)
		}
	}
	return items
}

func addFile(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func mediaTypeByExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

func sanitizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
