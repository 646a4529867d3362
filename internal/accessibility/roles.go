package accessibility

import "github.com/thywilljoshua/pdf-to-epub/internal/doc"

// RoleFor maps a structural block type to its semantic role. Total and
// deterministic: unknown types map to the generic text role.
func RoleFor(t doc.BlockType) doc.Role {
	switch t {
	case doc.BlockHeading:
		return doc.RoleHeading
	case doc.BlockListItem, doc.BlockOrderedList, doc.BlockUnorderedList:
		return doc.RoleList
	case doc.BlockCaption:
		return doc.RoleCaption
	case doc.BlockFootnote, doc.BlockCallout:
		return doc.RoleNote
	case doc.BlockSidebar:
		return doc.RoleComplementary
	default:
		return doc.RoleText
	}
}

// applyRoles persists the role mapping onto every text block so the
// rendering stage can emit it without recomputing.
func applyRoles(s *doc.DocumentStructure) {
	for pi := range s.Pages {
		for bi := range s.Pages[pi].TextBlocks {
			b := &s.Pages[pi].TextBlocks[bi]
			b.Role = RoleFor(b.Type)
		}
	}
}
