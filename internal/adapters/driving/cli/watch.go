package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pustaka-labs/naskah/internal/core/domain"
	"github.com/pustaka-labs/naskah/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Process documents dropped into a directory",
	Long: `Watches a directory and runs the extraction pipeline on every
supported document that appears. Results are written next to each file
as <name>.analysis.json. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path, process := shouldProcess(event)
			if !process {
				continue
			}
			handleDroppedFile(ctx, cmd, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// shouldProcess filters watcher events down to newly written documents
// in a supported format. Directories, hidden files and our own output
// files never qualify.
func shouldProcess(event fsnotify.Event) (string, bool) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return "", false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return "", false
	}

	if !domain.FormatFromPath(event.Name).IsValid() {
		return "", false
	}
	return event.Name, true
}

// handleDroppedFile processes one document and writes the analysis
// JSON next to it. Failures are logged, never fatal to the watch loop.
func handleDroppedFile(ctx context.Context, cmd *cobra.Command, path string) {
	report := processFile(ctx, path)
	if report.Error != "" {
		logger.Warn("Processing %s failed: %s", path, report.Error)
		return
	}

	outPath := analysisPath(path)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.Warn("Marshalling analysis for %s failed: %v", path, err)
		return
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		logger.Warn("Writing %s failed: %v", outPath, err)
		return
	}

	cmd.Printf("Processed %s -> %s\n", path, outPath)
}

// analysisPath maps a document path to its analysis output path.
func analysisPath(docPath string) string {
	ext := filepath.Ext(docPath)
	return strings.TrimSuffix(docPath, ext) + ".analysis.json"
}
