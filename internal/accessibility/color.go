package accessibility

import "github.com/thywilljoshua/pdf-to-epub/internal/doc"

// ContrastAnalyzer inspects a document for color-only meaning conveyance
// (e.g. a legend distinguishable only by hue). The structure carries no
// color data today, so the default implementation changes nothing; the
// interface exists so a real analyzer can be substituted without touching
// the orchestration.
type ContrastAnalyzer interface {
	Check(s *doc.DocumentStructure) *doc.DocumentStructure
}

// NoopContrast is the default ContrastAnalyzer: an identity transform.
type NoopContrast struct{}

func (NoopContrast) Check(s *doc.DocumentStructure) *doc.DocumentStructure { return s }

func (e *Enhancer) checkColorAccessibility(s *doc.DocumentStructure) {
	analyzer := e.Contrast
	if analyzer == nil {
		analyzer = NoopContrast{}
	}
	analyzer.Check(s)
}
