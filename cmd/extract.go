package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dungeonquiz/internal/extract"
	"github.com/abhisek/dungeonquiz/internal/pack"
)

var extractCmd = &cobra.Command{
	Use:   "extract [FILE]",
	Short: "Turn worksheet text or a PDF into a draft pack",
	Long: `Reads worksheet text from FILE (or stdin) and prints a draft pack.

Multiple-choice answers in the draft are placeholders and fill answers are
left empty: check every answer before publishing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := metaFromFlags(cmd)
		if err != nil {
			return err
		}

		text, err := extractInput(cmd, args)
		if err != nil {
			return err
		}

		drafts := extract.Extract(text)
		data, err := pack.Marshal(pack.NewDraftPack(meta, drafts))
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("output")
		if err := writeOutput(cmd, out, data); err != nil {
			return err
		}

		s := extract.Stats(drafts)
		fmt.Fprintf(cmd.ErrOrStderr(), "extracted %d questions (%d mcq, %d fill); %d answers need checking\n",
			s.Total, s.MCQ, s.Fill, s.Unresolved)
		return nil
	},
}

// extractInput returns the raw text to segment, pulling it out of a PDF
// when --pdf is given.
func extractInput(cmd *cobra.Command, args []string) (string, error) {
	pdfPath, _ := cmd.Flags().GetString("pdf")
	if pdfPath != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("give either FILE or --pdf, not both")
		}
		doc, err := readInput(cmd, pdfPath)
		if err != nil {
			return "", err
		}
		var ex extract.TextExtractor = extract.PDFExtractor{}
		return ex.ExtractText(cmd.Context(), doc)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	data, err := readInput(cmd, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	extractCmd.Flags().String("pdf", "", "Read the worksheet from a PDF file")
	extractCmd.Flags().StringP("output", "o", "", "Write the draft here instead of stdout")
	addMetaFlags(extractCmd)
}
