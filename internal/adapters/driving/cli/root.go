// Package cli provides the cobra command tree for vcardqr.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/core/ports/driving"
	"github.com/custodia-labs/vcardqr/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	noConfig  bool
)

// Services used by commands. Set through SetServices or built per
// invocation by the factory.
var (
	cardService     driving.CardService
	pipeline        driving.Pipeline
	scanService     driving.ScanService
	settingsService driving.SettingsService
)

// serviceFactory builds services after flags are parsed.
var serviceFactory ServiceFactory

// Errors returned when a command runs without its service.
var (
	errCardServiceMissing     = errors.New("card service not configured")
	errPipelineMissing        = errors.New("pipeline not configured")
	errScanServiceMissing     = errors.New("scan service not configured")
	errSettingsServiceMissing = errors.New("settings service not configured")
)

// Services holds the driving ports the commands use.
type Services struct {
	Card     driving.CardService
	Pipeline driving.Pipeline
	Scan     driving.ScanService
	Settings driving.SettingsService
}

// ServiceOptions carries the global flags a factory needs.
type ServiceOptions struct {
	// ConfigDir overrides the configuration directory.
	ConfigDir string

	// NoConfig keeps settings in memory only.
	NoConfig bool
}

// ServiceFactory builds Services once flags are known.
type ServiceFactory func(opts ServiceOptions) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "vcardqr",
	Short: "Turn contact details into a vCard QR code",
	Long: `vcardqr builds a vCard 3.0 contact card from the fields you enter and
encodes it as a QR code that phones can scan straight into their address book.

The image is written as PNG, JPEG or BMP depending on the file extension.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.vcardqr)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "do not read or write the configuration file")
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if serviceFactory == nil {
		return nil
	}

	services, err := serviceFactory(ServiceOptions{ConfigDir: configDir, NoConfig: noConfig})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	return nil
}

// SetServices injects the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	cardService = s.Card
	pipeline = s.Pipeline
	scanService = s.Scan
	settingsService = s.Settings
}

// SetServiceFactory registers a factory run before each command.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. ctx is cancelled on interrupt by the caller.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
