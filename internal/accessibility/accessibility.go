// Package accessibility decorates a parsed document structure with the
// metadata assistive technology needs: alt text on every image, a semantic
// role on every text block, and a complete linear reading order on every
// page. It runs as one sequential pass of four ordered sub-passes over the
// same structure and never removes, reorders, or retypes existing content.
package accessibility

import (
	"context"
	"errors"

	"github.com/thywilljoshua/pdf-to-epub/internal/ai"
	"github.com/thywilljoshua/pdf-to-epub/internal/doc"
)

// ErrNilStructure is returned when the caller hands over no document at
// all. Missing fields inside a valid structure are always defaulted, never
// an error; a nil structure is a contract violation by the caller.
var ErrNilStructure = errors.New("accessibility: nil document structure")

// Report summarizes what the enhancement pass changed.
type Report struct {
	AltFromCaption  int `json:"alt_from_caption"`
	AltFromFallback int `json:"alt_from_fallback"`
	AltFlagged      int `json:"alt_flagged_for_review"`
	OrdersRebuilt   int `json:"reading_orders_rebuilt"`
}

// Enhancer runs the accessibility pass. The zero value is fully usable:
// alt text falls back to fixed type-based defaults and the color check is
// a no-op.
type Enhancer struct {
	// Describer, when set, replaces the type-based alt text fallback with
	// generated descriptions. It is never consulted for images that have a
	// caption or are decorative.
	Describer ai.Describer

	// Contrast, when set, replaces the default no-op color check.
	Contrast ContrastAnalyzer
}

// Enhance mutates s in place and reports what changed. Running it twice is
// a no-op the second time: every sub-pass only fills fields that are still
// missing.
func (e *Enhancer) Enhance(ctx context.Context, s *doc.DocumentStructure) (Report, error) {
	if s == nil {
		return Report{}, ErrNilStructure
	}
	var rep Report
	e.resolveAltText(ctx, s, &rep)
	applyRoles(s)
	e.checkColorAccessibility(s)
	rep.OrdersRebuilt = ensureReadingOrder(s)
	return rep, nil
}
