// ABOUTME: Command-line interface for comparing website snapshots
// ABOUTME: Provides diff, watch, and capture subcommands over the diff engine

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicul/website-differ/core/diff"
	"github.com/atomicul/website-differ/core/interfaces"
	"github.com/atomicul/website-differ/core/report"
	"github.com/atomicul/website-differ/core/snapshot"
	stdhttp "github.com/atomicul/website-differ/infrastructure/http/standard"
	logruslogger "github.com/atomicul/website-differ/infrastructure/logger/logrus"
	"github.com/atomicul/website-differ/infrastructure/storage/sqlite"
	"github.com/atomicul/website-differ/pkg/config"
)

const usage = `Usage:
  differ diff OLD.html NEW.html     Score the structural change between two files
  differ watch DIR [--site NAME]    Diff every consecutive snapshot pair under DIR
  differ capture URL DIR            Save a timestamped snapshot of URL under DIR
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "diff":
		err = runDiff(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "capture":
		err = runCapture(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runDiff(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("diff takes exactly two HTML files")
	}

	differ, err := diff.New()
	if err != nil {
		return err
	}
	service := snapshot.NewService(interfaces.Dependencies{}, differ, nil)

	result, err := service.DiffFiles(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Println(report.FormatResult(result))
	return nil
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	site := fs.String("site", "", "site identifier recorded with each diff (defaults to the directory name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("watch takes exactly one snapshot directory")
	}
	root := fs.Arg(0)
	if *site == "" {
		*site = siteFromPath(root)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	logger := logruslogger.NewLogger(logruslogger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	var store interfaces.DiffHistoryStorage
	if cfg.Storage.SQLitePath != "" {
		sqliteStore, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		defer sqliteStore.Close()
		store = sqliteStore
	}

	differ, err := diff.New()
	if err != nil {
		return err
	}
	service := snapshot.NewService(interfaces.Dependencies{Logger: logger}, differ, store)

	records, err := service.CompareDirectory(context.Background(), *site, root)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Nothing to compare: fewer than two snapshots found.")
		return nil
	}

	fmt.Print(report.RenderTable(records))
	return nil
}

func runCapture(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("capture takes a URL and a destination directory")
	}
	pageURL, root := args[0], args[1]

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	logger := logruslogger.NewLogger(logruslogger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})

	service := snapshot.NewCaptureService(interfaces.Dependencies{
		Logger:     logger,
		HTTPClient: stdhttp.NewClient(30 * time.Second),
	})

	snap, err := service.Capture(context.Background(), pageURL, root)
	if err != nil {
		return err
	}

	fmt.Printf("Saved snapshot %s", snap.Name)
	if snap.Title != "" {
		fmt.Printf(" (%s)", snap.Title)
	}
	fmt.Printf(" to %s\n", snap.Path)
	return nil
}

// siteFromPath derives a site identifier from the snapshot directory name.
func siteFromPath(root string) string {
	base := filepath.Base(filepath.Clean(root))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "local"
	}
	return base
}
