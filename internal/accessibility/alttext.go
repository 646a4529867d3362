package accessibility

import (
	"context"

	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

// typeFallback returns the fixed alt text for an image that has neither
// existing alt text nor a caption. Decorative images get the empty string
// on purpose: downstream renderers treat empty alt as intentionally silent.
// The formula wording applies to document-level images only; formula blocks
// inside a page fall through to the generic default.
func typeFallback(t doc.ImageType, documentLevel bool) string {
	switch t {
	case doc.ImageFigure:
		return "Figure: Illustration"
	case doc.ImageChart:
		return "Chart: Data visualization"
	case doc.ImageDiagram:
		return "Diagram: Visual diagram"
	case doc.ImageFormula:
		if documentLevel {
			return "Mathematical formula"
		}
		return "Image: Content image"
	case doc.ImageDecorative:
		return ""
	default:
		return "Image: Content image"
	}
}

// resolveAltText fills the alt field of every document-level image
// reference and every page-level image block that does not already carry
// one. Resolution order: existing alt wins, then the decorative rule, then
// the caption, then the describer or type fallback. Captions are read but
// never modified.
func (e *Enhancer) resolveAltText(ctx context.Context, s *doc.DocumentStructure, rep *Report) {
	for i := range s.Images {
		img := &s.Images[i]
		if img.Alt != "" {
			continue
		}
		alt, fromCaption := e.altFor(ctx, img.Type, img.Caption, img.Path, true)
		img.Alt = alt
		countResolution(rep, img.Type, fromCaption)
	}
	for pi := range s.Pages {
		for bi := range s.Pages[pi].ImageBlocks {
			img := &s.Pages[pi].ImageBlocks[bi]
			if img.Alt != "" {
				continue
			}
			alt, fromCaption := e.altFor(ctx, img.Type, img.Caption, img.Path, false)
			img.Alt = alt
			if !fromCaption && img.Type != doc.ImageDecorative {
				img.NeedsAltReview = true
				rep.AltFlagged++
			}
			countResolution(rep, img.Type, fromCaption)
		}
	}
}

// altFor resolves alt text for one image. The second result reports
// whether the caption supplied the text; callers use that to decide
// whether the image needs human review.
func (e *Enhancer) altFor(ctx context.Context, t doc.ImageType, caption, path string, documentLevel bool) (string, bool) {
	if t == doc.ImageDecorative {
		return "", false
	}
	if caption != "" {
		return caption, true
	}
	if e.Describer != nil && path != "" {
		if d, err := e.Describer.Describe(ctx, path); err == nil && d != "" {
			return d, false
		}
	}
	return typeFallback(t, documentLevel), false
}

func countResolution(rep *Report, t doc.ImageType, fromCaption bool) {
	switch {
	case fromCaption:
		rep.AltFromCaption++
	case t != doc.ImageDecorative:
		rep.AltFromFallback++
	}
}
