package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

var (
	scanFields bool
	scanJSON   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [image]",
	Short: "Decode a QR code image",
	Long: `Decode the QR code in a PNG, JPEG or BMP image and print its payload.

With --fields the payload is read as a vCard and the contact fields are
listed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanFields, "fields", false, "parse the payload as a vCard and list its fields")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output fields as JSON (implies --fields)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanService == nil {
		return errScanServiceMissing
	}

	doc, err := scanService.ScanFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if !scanFields && !scanJSON {
		cmd.Print(doc.String())
		return nil
	}

	if cardService == nil {
		return errCardServiceMissing
	}
	record, err := cardService.Parse(doc)
	if err != nil {
		return fmt.Errorf("reading card: %w", err)
	}

	if scanJSON {
		return outputContactJSON(cmd, record)
	}
	outputContactFields(cmd, record)
	return nil
}

func outputContactJSON(cmd *cobra.Command, record *domain.ContactRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputContactFields(cmd *cobra.Command, record *domain.ContactRecord) {
	for _, f := range domain.ContactFields() {
		v := f.Get(*record)
		if v == "" {
			continue
		}
		cmd.Printf("%-14s %s\n", f.Label+":", v)
	}
}
