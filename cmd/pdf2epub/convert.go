package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thywilljoshua/pdf-to-epub/internal/ai"
	"github.com/thywilljoshua/pdf-to-epub/internal/convert"
)

func convertCmd() *cobra.Command {
	var out string
	var title string
	var lang string
	var cover string
	var aiProvider string
	var aiModel string

	cmd := &cobra.Command{
		Use:   "convert <pdf>",
		Short: "Convert a PDF into an accessible EPUB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath := args[0]
			if out == "" {
				out = "."
			}

			var describer ai.Describer = ai.Noop{}
			if strings.EqualFold(aiProvider, "gemini") {
				g, err := ai.NewGemini(cmd.Context(), os.Getenv("GOOGLE_API_KEY"), aiModel)
				if err != nil {
					return fmt.Errorf("configuring gemini: %w", err)
				}
				describer = g
			}

			conf := convert.Config{
				OutDir:     out,
				Title:      title,
				Language:   lang,
				CoverImage: cover,
				Describer:  describer,
			}

			res, err := convert.Run(cmd.Context(), pdfPath, conf)
			if err != nil {
				return err
			}
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory for the EPUB (default: current directory)")
	cmd.Flags().StringVar(&title, "title", "", "override the document title (default: first heading)")
	cmd.Flags().StringVar(&lang, "lang", "en", "document language code")
	cmd.Flags().StringVar(&cover, "cover", "", "path to a cover image embedded as a document-level figure")
	cmd.Flags().StringVar(&aiProvider, "ai", "off", "AI image description provider: off|gemini")
	cmd.Flags().StringVar(&aiModel, "ai-model", "gemini-2.5-flash", "model used for image descriptions")
	return cmd
}
