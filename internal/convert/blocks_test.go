package convert

import (
	"testing"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

func TestClassifyBlock(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantType  doc.BlockType
		wantLevel int
	}{
		{"numbered heading", "2.1 General safety rules", doc.BlockHeading, 2},
		{"deep numbered heading", "1.2.1 Intended use", doc.BlockHeading, 3},
		{"all caps heading", "TABLE OF CONTENTS", doc.BlockHeading, 1},
		{"sentence is not a heading", "2.1 General safety rules apply to every operator of the machine and must be read in full before first use.", doc.BlockParagraph, 0},
		{"footnote marker", "[1] ISO 12100:2010", doc.BlockFootnote, 0},
		{"figure caption", "Figure 3: Control panel layout", doc.BlockCaption, 0},
		{"table caption", "Table 2. Torque values", doc.BlockCaption, 0},
		{"warning callout", "WARNING: Disconnect power before servicing.", doc.BlockCallout, 0},
		{"single bullet", "- keep hands clear", doc.BlockListItem, 0},
		{"bullet run", "- first\n- second\n- third", doc.BlockUnorderedList, 0},
		{"numbered run", "1. first\n2. second", doc.BlockOrderedList, 0},
		{"plain paragraph", "The machine is intended for indoor use only.", doc.BlockParagraph, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotLevel := classifyBlock(tt.text)
			if gotType != tt.wantType || gotLevel != tt.wantLevel {
				t.Errorf("classifyBlock(%q) = %q/%d, want %q/%d", tt.text, gotType, gotLevel, tt.wantType, tt.wantLevel)
			}
		})
	}
}

func TestBuildStructureIDsUniquePerPage(t *testing.T) {
	pages := []string{
		"INTRODUCTION\n\nFirst paragraph.\n\nSecond paragraph.",
		"- a\n- b\n\nClosing note.",
	}
	s := buildStructure(pages, Config{})
	if len(s.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(s.Pages))
	}
	for _, p := range s.Pages {
		seen := map[string]bool{}
		for _, b := range p.TextBlocks {
			if seen[b.ID] {
				t.Errorf("page %d: duplicate block ID %s", p.Number, b.ID)
			}
			seen[b.ID] = true
		}
		if p.ReadingOrder != nil {
			t.Errorf("page %d: layout stage must not assign reading order", p.Number)
		}
	}
	if s.Title != "Introduction" && s.Title != "INTRODUCTION" {
		t.Errorf("title = %q, want derived from first heading", s.Title)
	}
}

func TestBuildStructureCoverImage(t *testing.T) {
	s := buildStructure([]string{"text"}, Config{CoverImage: "cover.png"})
	if len(s.Images) != 1 {
		t.Fatalf("images = %d, want 1", len(s.Images))
	}
	img := s.Images[0]
	if img.ID != "cover" || img.Type != doc.ImageFigure || img.Path != "cover.png" {
		t.Errorf("cover reference = %+v", img)
	}
	if img.Alt != "" {
		t.Errorf("layout stage must leave alt text empty, got %q", img.Alt)
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("one\ntwo\n\n\nthree\n")
	if len(got) != 2 || got[0] != "one\ntwo" || got[1] != "three" {
		t.Errorf("splitParagraphs = %q", got)
	}
}

func TestBuildStructureDefaultTitle(t *testing.T) {
	s := buildStructure([]string{"just body text."}, Config{})
	if s.Title != "Untitled" {
		t.Errorf("title = %q, want Untitled", s.Title)
	}
	if s.Language != "en" {
		t.Errorf("language = %q, want en", s.Language)
	}
}
