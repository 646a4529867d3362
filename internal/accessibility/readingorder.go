package accessibility

import "github.com/thywilljoshua/pdf-to-epub/internal/doc"

// ensureReadingOrder gives every page a reading order. Pages that already
// carry one with at least one identifier are left byte-for-byte untouched,
// even if it no longer covers every block; pages without one get their text
// blocks in storage order, which upstream layout guarantees is the visual
// reading order. A page with no text blocks ends with a valid empty order.
// Returns the number of orders synthesized.
func ensureReadingOrder(s *doc.DocumentStructure) int {
	rebuilt := 0
	for i := range s.Pages {
		p := &s.Pages[i]
		if p.ReadingOrder != nil && len(p.ReadingOrder.BlockIDs) > 0 {
			continue
		}
		ids := make([]string, 0, len(p.TextBlocks))
		for _, b := range p.TextBlocks {
			ids = append(ids, b.ID)
		}
		p.ReadingOrder = &doc.ReadingOrder{BlockIDs: ids}
		rebuilt++
	}
	return rebuilt
}
