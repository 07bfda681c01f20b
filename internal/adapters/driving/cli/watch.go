package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/vcardqr/internal/logger"
)

var watchOutput string

// watchDebounce coalesces bursts of writes from editors.
var watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch [contact.toml]",
	Short: "Regenerate the QR code whenever a contact file changes",
	Long: `Watch a TOML contact file and rewrite the QR code image every time the
file is saved. Runs until interrupted.

Example:
  vcardqr watch jane.toml -o jane.png`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "image path (default QRCode_<first>_<last>.png)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if cardService == nil {
		return errCardServiceMissing
	}
	if pipeline == nil {
		return errPipelineMissing
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}

	w := &contactWatcher{
		path:     path,
		output:   watchOutput,
		out:      cmd.OutOrStdout(),
		debounce: watchDebounce,
	}
	return w.Run(cmd.Context())
}

// contactWatcher regenerates an image from a contact file on change.
type contactWatcher struct {
	path     string
	output   string
	out      io.Writer
	debounce time.Duration
}

// Run generates once, then again after every change until ctx is done.
func (w *contactWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	// Editors often save by writing a new file and renaming it over the
	// old one, so the directory is watched rather than the file.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}

	w.regenerate(ctx)
	fmt.Fprintf(w.out, "Watching %s (ctrl+c to stop)\n", w.path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.handleFsEvent(event) {
				pending = time.After(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		case <-pending:
			pending = nil
			w.regenerate(ctx)
		}
	}
}

// handleFsEvent reports whether event changed the watched file.
func (w *contactWatcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// regenerate rebuilds and exports the image. Errors are reported and
// watching continues.
func (w *contactWatcher) regenerate(ctx context.Context) {
	logger.Debug("Regenerating from %s", w.path)

	record, err := loadContactFile(w.path)
	if err != nil {
		fmt.Fprintf(w.out, "Error: %v\n", err)
		return
	}

	doc, err := cardService.Serialize(*record)
	if err != nil {
		fmt.Fprintf(w.out, "Error: building card: %v\n", err)
		return
	}

	if _, err := pipeline.Generate(ctx, doc); err != nil {
		fmt.Fprintf(w.out, "Error: generating QR code: %v\n", err)
		return
	}

	destination := w.output
	if destination == "" {
		destination = defaultOutputPath(*record)
	}
	result, err := pipeline.Export(ctx, destination)
	if err != nil {
		fmt.Fprintf(w.out, "Error: saving QR code: %v\n", err)
		return
	}
	fmt.Fprintf(w.out, "%s Updated %s\n", time.Now().Format(time.TimeOnly), result.Path)
}
