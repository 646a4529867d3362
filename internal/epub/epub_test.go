package epub

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

func writeSample(t *testing.T) (string, *doc.DocumentStructure) {
	t.Helper()
	dir := t.TempDir()

	coverPath := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(coverPath, []byte("not really a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := &doc.DocumentStructure{
		Title:    "Test Manual",
		Language: "en",
		Images: []doc.ImageReference{
			{ID: "cover", Type: doc.ImageFigure, Path: coverPath, Alt: "Figure: Illustration"},
		},
		Pages: []doc.PageStructure{
			{
				Number: 1,
				TextBlocks: []doc.TextBlock{
					{ID: "b1", Type: doc.BlockHeading, Role: doc.RoleHeading, Level: 1, Text: "Intro"},
					{ID: "b2", Type: doc.BlockParagraph, Role: doc.RoleText, Text: "Hello."},
				},
				ReadingOrder: &doc.ReadingOrder{BlockIDs: []string{"b1", "b2"}},
			},
			{
				Number:       2,
				TextBlocks:   []doc.TextBlock{{ID: "b1", Type: doc.BlockParagraph, Role: doc.RoleText, Text: "More."}},
				ReadingOrder: &doc.ReadingOrder{BlockIDs: []string{"b1"}},
			},
		},
	}

	out := filepath.Join(dir, "test.epub")
	if err := Write(out, s); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return out, s
}

func TestWriteContainerLayout(t *testing.T) {
	out, _ := writeSample(t)

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening epub: %v", err)
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		t.Fatal("empty archive")
	}
	first := zr.File[0]
	if first.Name != "mimetype" {
		t.Errorf("first entry = %s, want mimetype", first.Name)
	}
	if first.Method != zip.Store {
		t.Errorf("mimetype must be stored uncompressed")
	}
	if got := readEntry(t, &zr.Reader, "mimetype"); got != "application/epub+zip" {
		t.Errorf("mimetype content = %q", got)
	}

	want := []string{
		"META-INF/container.xml",
		"OEBPS/content.opf",
		"OEBPS/nav.xhtml",
		"OEBPS/page-001.xhtml",
		"OEBPS/page-002.xhtml",
		"OEBPS/images/cover.png",
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, n := range want {
		if !names[n] {
			t.Errorf("missing entry %s", n)
		}
	}
}

func TestWriteOPF(t *testing.T) {
	out, _ := writeSample(t)
	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	opf := readEntry(t, &zr.Reader, "OEBPS/content.opf")
	for _, want := range []string{
		`version="3.0"`,
		"<dc:title>Test Manual</dc:title>",
		"<dc:language>en</dc:language>",
		`property="schema:accessibilityFeature"`,
		"alternativeText",
		"readingOrder",
		"structuralNavigation",
		`properties="nav"`,
		`properties="cover-image"`,
		`idref="page001"`,
		`idref="page002"`,
	} {
		if !strings.Contains(opf, want) {
			t.Errorf("content.opf missing %s:\n%s", want, opf)
		}
	}
}

func readEntry(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(b)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}
