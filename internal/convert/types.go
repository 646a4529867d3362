package convert

import (
	"github.com/thywilljoshua/pdf-to-epub/internal/accessibility"
	"github.com/thywilljoshua/pdf-to-epub/internal/ai"
)

type Config struct {
	OutDir     string
	Title      string
	Language   string
	CoverImage string
	Describer  ai.Describer
}

type Result struct {
	Pages         int                  `json:"pages"`
	TextBlocks    int                  `json:"text_blocks"`
	Images        int                  `json:"images"`
	Accessibility accessibility.Report `json:"accessibility"`
	OutFile       string               `json:"out_file"`
}
