package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Print the vCard text without generating an image",
	Long: `Build the vCard 3.0 text for the given fields and print it.

Lines end with CRLF as required by the vCard format.`,
	Args: cobra.NoArgs,
	RunE: runCard,
}

func init() {
	addContactFlags(cardCmd)
	rootCmd.AddCommand(cardCmd)
}

func runCard(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errCardServiceMissing
	}

	record, err := contactFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := cardService.Serialize(record)
	if err != nil {
		return fmt.Errorf("building card: %w", err)
	}

	cmd.Print(doc.String())
	return nil
}
