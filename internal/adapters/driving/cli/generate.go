package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/vcardqr/internal/adapters/driving/tui/components/qrview"
	"github.com/custodia-labs/vcardqr/internal/core/domain"
	"github.com/custodia-labs/vcardqr/internal/logger"
)

// stdoutOutput writes the image to standard output.
const stdoutOutput = "-"

var (
	generateOutput string
	generateFormat string
	generatePrint  bool
	generateShow   bool
	generateVerify bool
)

// stdoutIsTerminal reports whether standard output is a terminal.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a contact QR code image",
	Long: `Build a vCard from the given fields and write it as a QR code image.

First and last name are required. The image format follows the output
extension: .png, .jpg/.jpeg or .bmp (anything else is written as PNG).
Without --output the image is saved as QRCode_<first>_<last>.png in the
configured output directory.

Examples:
  vcardqr generate --first Jane --last Doe --email jane@example.com
  vcardqr generate --from jane.toml -o jane.jpg --verify
  vcardqr generate --from jane.toml -o - > jane.png`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addContactFlags(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "image path, or - for standard output")
	generateCmd.Flags().StringVar(&generateFormat, "format", "png", "image format for standard output (png, jpeg, bmp)")
	generateCmd.Flags().BoolVar(&generatePrint, "print", false, "print the vCard text")
	generateCmd.Flags().BoolVar(&generateShow, "show", false, "preview the QR code in the terminal")
	generateCmd.Flags().BoolVar(&generateVerify, "verify", false, "scan the written image and compare it with the card")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if cardService == nil {
		return errCardServiceMissing
	}
	if pipeline == nil {
		return errPipelineMissing
	}

	record, err := contactFromFlags(cmd)
	if err != nil {
		return err
	}

	doc, err := cardService.Serialize(record)
	if err != nil {
		return fmt.Errorf("building card: %w", err)
	}

	toStdout := generateOutput == stdoutOutput
	if generatePrint {
		// Keep standard output clean for the image.
		if toStdout {
			fmt.Fprint(cmd.ErrOrStderr(), doc.String())
		} else {
			cmd.Print(doc.String())
		}
	}

	symbol, err := pipeline.Generate(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}

	if generateShow && !toStdout {
		if stdoutIsTerminal() {
			cmd.Print(qrview.Render(symbol.Modules))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: --show ignored, standard output is not a terminal")
		}
	}

	if toStdout {
		return writeImageToStdout(cmd)
	}

	destination := generateOutput
	if destination == "" {
		destination = defaultOutputPath(record)
	}

	result, err := pipeline.Export(cmd.Context(), destination)
	if err != nil {
		return fmt.Errorf("saving QR code: %w", err)
	}
	cmd.Printf("Saved %s (%s, %d bytes)\n", result.Path, result.Format, result.Bytes)

	if generateVerify {
		return verifyExport(cmd, result.Path, doc)
	}
	return nil
}

func writeImageToStdout(cmd *cobra.Command) error {
	format, ok := domain.ParseImageFormat(generateFormat)
	if !ok {
		return fmt.Errorf("%w: unknown image format %q", domain.ErrInvalidInput, generateFormat)
	}
	data, err := pipeline.Render(cmd.Context(), format)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// defaultOutputPath places the default file name in the configured
// output directory.
func defaultOutputPath(record domain.ContactRecord) string {
	name := record.DefaultFileName()
	if settingsService == nil {
		return name
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Using current directory: %v", err)
		return name
	}
	if settings.Output.Directory == "" {
		return name
	}
	return filepath.Join(settings.Output.Directory, name)
}

func verifyExport(cmd *cobra.Command, path string, doc domain.CardDocument) error {
	if scanService == nil {
		return errScanServiceMissing
	}
	scanned, err := scanService.ScanFile(cmd.Context(), path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if scanned != doc {
		return fmt.Errorf("verifying %s: %w: scanned payload differs from the card", path, domain.ErrDecode)
	}
	cmd.Println("Verified: image decodes to the card")
	return nil
}
