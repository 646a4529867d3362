// Package doc holds the in-memory document model shared by the conversion
// pipeline: pages, text blocks, images, and per-page reading order. The
// layout stage populates it, the accessibility stage backfills metadata,
// and the EPUB writer consumes it.
package doc

// BlockType is the structural category of a text block, assigned by the
// layout stage.
type BlockType string

const (
	BlockHeading       BlockType = "heading"
	BlockParagraph     BlockType = "paragraph"
	BlockListItem      BlockType = "list_item"
	BlockOrderedList   BlockType = "ordered_list"
	BlockUnorderedList BlockType = "unordered_list"
	BlockCaption       BlockType = "caption"
	BlockFootnote      BlockType = "footnote"
	BlockSidebar       BlockType = "sidebar"
	BlockCallout       BlockType = "callout"
)

// Role is the semantic role a block plays for assistive technology.
type Role string

const (
	RoleHeading       Role = "heading"
	RoleList          Role = "list"
	RoleCaption       Role = "caption"
	RoleNote          Role = "note"
	RoleComplementary Role = "complementary"
	RoleText          Role = "text"
)

// ImageType is the structural category of a visual element.
type ImageType string

const (
	ImageFigure     ImageType = "figure"
	ImageChart      ImageType = "chart"
	ImageDiagram    ImageType = "diagram"
	ImageFormula    ImageType = "formula"
	ImageDecorative ImageType = "decorative"
	ImageGeneric    ImageType = "image"
)

// TextBlock is one unit of text content on a page. ID is assigned by the
// layout stage, is unique within the page, and is never reassigned.
type TextBlock struct {
	ID    string    `json:"id"`
	Type  BlockType `json:"type"`
	Text  string    `json:"text"`
	Level int       `json:"level,omitempty"`
	Role  Role      `json:"role,omitempty"`
}

// ImageReference is a document-level image (cover, appendix figure) that is
// not part of any page's block stream. Caption is an immutable input; Alt is
// filled by the accessibility stage when missing.
type ImageReference struct {
	ID      string    `json:"id"`
	Type    ImageType `json:"type"`
	Path    string    `json:"path,omitempty"`
	Caption string    `json:"caption,omitempty"`
	Alt     string    `json:"alt"`
}

// ImageBlock is an image placed in a page's block stream. NeedsAltReview is
// set by the accessibility stage when alt text had to be derived from the
// image type rather than an author-provided caption.
type ImageBlock struct {
	ID             string    `json:"id"`
	Type           ImageType `json:"type"`
	Path           string    `json:"path,omitempty"`
	Caption        string    `json:"caption,omitempty"`
	Alt            string    `json:"alt"`
	NeedsAltReview bool      `json:"needs_alt_review,omitempty"`
}

// ReadingOrder is the linear sequence in which a page's text blocks should
// be traversed by a screen reader.
type ReadingOrder struct {
	BlockIDs []string `json:"block_ids"`
}

// CompleteFor reports whether the order covers exactly the given blocks:
// every block ID present exactly once and nothing else.
func (r *ReadingOrder) CompleteFor(blocks []TextBlock) bool {
	if r == nil || len(r.BlockIDs) != len(blocks) {
		return false
	}
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		seen[b.ID] = true
	}
	used := make(map[string]bool, len(r.BlockIDs))
	for _, id := range r.BlockIDs {
		if !seen[id] || used[id] {
			return false
		}
		used[id] = true
	}
	return true
}

// PageStructure is one logical page. A nil ReadingOrder means the layout
// stage did not produce one; the accessibility stage synthesizes it.
type PageStructure struct {
	Number       int           `json:"number"`
	TextBlocks   []TextBlock   `json:"text_blocks"`
	ImageBlocks  []ImageBlock  `json:"image_blocks,omitempty"`
	ReadingOrder *ReadingOrder `json:"reading_order,omitempty"`
}

// Block returns the text block with the given ID, or nil if the page has no
// such block.
func (p *PageStructure) Block(id string) *TextBlock {
	for i := range p.TextBlocks {
		if p.TextBlocks[i].ID == id {
			return &p.TextBlocks[i]
		}
	}
	return nil
}

// DocumentStructure is the root aggregate for one converted document. It is
// owned by the pipeline and mutated in place by each stage; it must not be
// shared across goroutines while a stage is running.
type DocumentStructure struct {
	Title    string           `json:"title"`
	Language string           `json:"language"`
	Pages    []PageStructure  `json:"pages"`
	Images   []ImageReference `json:"images,omitempty"`
}
