package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change how QR code images are written.

Settings are stored in ~/.vcardqr/config.toml unless --config-dir or
--no-config is given.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsScaleCmd = &cobra.Command{
	Use:   "scale [pixels]",
	Short: "Set the pixel size of one QR module",
	Long: fmt.Sprintf(`Set how many pixels wide each QR module is drawn (%d-%d).

Larger values give bigger images that are easier to print.`, domain.MinScale, domain.MaxScale),
	Args: cobra.ExactArgs(1),
	RunE: runSettingsScale,
}

var settingsJPEGQualityCmd = &cobra.Command{
	Use:   "jpeg-quality [quality]",
	Short: "Set the JPEG encoder quality",
	Long:  fmt.Sprintf(`Set the quality used for .jpg and .jpeg exports (%d-%d).`, domain.MinJPEGQuality, domain.MaxJPEGQuality),
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsJPEGQuality,
}

var settingsDirectoryCmd = &cobra.Command{
	Use:   "directory [path]",
	Short: "Set the default output directory",
	Long: `Set the directory where images are saved when no output path is given.

Pass an empty string to use the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsDirectory,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsScaleCmd)
	settingsCmd.AddCommand(settingsJPEGQualityCmd)
	settingsCmd.AddCommand(settingsDirectoryCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Output]")
	cmd.Printf("  Scale: %d px per module\n", settings.Output.Scale)
	cmd.Printf("  JPEG quality: %d\n", settings.Output.JPEGQuality)
	dir := settings.Output.Directory
	if dir == "" {
		dir = "(current directory)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	return nil
}

func runSettingsScale(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	scale, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetScale(scale); err != nil {
		return fmt.Errorf("failed to set scale: %w", err)
	}

	cmd.Printf("Scale set to: %d px per module\n", scale)
	return nil
}

func runSettingsJPEGQuality(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	quality, err := parseIntArg(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetJPEGQuality(quality); err != nil {
		return fmt.Errorf("failed to set JPEG quality: %w", err)
	}

	cmd.Printf("JPEG quality set to: %d\n", quality)
	return nil
}

func runSettingsDirectory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	dir := args[0]
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", dir, err)
		}
		dir = abs
	}
	if err := settingsService.SetDirectory(dir); err != nil {
		return fmt.Errorf("failed to set directory: %w", err)
	}

	if dir == "" {
		cmd.Println("Directory set to: (current directory)")
	} else {
		cmd.Printf("Directory set to: %s\n", dir)
	}
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsServiceMissing
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func parseIntArg(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s)
	}
	return v, nil
}
