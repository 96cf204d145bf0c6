package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tsig/internal/docfmt"
	"tsig/internal/driver"
	"tsig/internal/project"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] path",
	Short: "Extract parameter descriptors from a file or directory",
	Long:  `Extract parses TypeScript sources and emits parameter descriptor trees with rendered signatures`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().String("format", "", "output format (pretty|json), overrides tsig.toml")
	extractCmd.Flags().Int("jobs", 0, "parallel workers for directory extraction (0 = GOMAXPROCS)")
	extractCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
	extractCmd.Flags().Bool("ui", false, "show interactive progress (directory mode)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	configStart := target
	if !info.IsDir() {
		configStart = filepath.Dir(target)
	}
	cfg, _, err := project.LoadConfigFrom(configStart)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}
	switch format {
	case "", "pretty":
		format = "pretty"
	case "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if info.IsDir() {
		return extractDir(cmd, target, cfg, format, maxDiagnostics)
	}
	return extractFile(cmd, target, format, maxDiagnostics)
}

func extractFile(cmd *cobra.Command, path, format string, maxDiagnostics int) error {
	res, err := driver.Extract(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if format == "json" {
		return docfmt.DocumentsJSON(os.Stdout, []docfmt.Document{docfmt.BuildDocument(res)})
	}

	opts := docfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	if res.Bag.Len() > 0 {
		docfmt.Pretty(os.Stderr, res.Bag, res.FileSet, docfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
	}
	return docfmt.EntriesPretty(os.Stdout, res.Path, res.Entries, opts)
}

func extractDir(cmd *cobra.Command, dir string, cfg project.Config, format string, maxDiagnostics int) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 {
		jobs = cfg.Extract.Jobs
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")

	var cache *driver.DiskCache
	if cfg.Extract.Cache && !noCache {
		var err error
		cache, err = driver.OpenDiskCache("tsig")
		if err != nil {
			// кэш необязателен: продолжаем без него
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
		}
	}

	opts := driver.DirOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Exts:           cfg.Extract.Extensions,
		Cache:          cache,
	}

	var (
		results []driver.DirResult
		err     error
	)
	wantUI, _ := cmd.Flags().GetBool("ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if wantUI && !quiet && format == "pretty" && isTerminal(os.Stdout) {
		results, err = runExtractWithUI(cmd.Context(), dir, opts)
	} else {
		results, err = driver.ExtractDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return err
	}

	if format == "json" {
		docs := make([]docfmt.Document, 0, len(results))
		for _, r := range results {
			doc := docfmt.Document{Path: r.Path, Entries: r.Entries, Cached: r.Cached}
			if doc.Entries == nil {
				doc.Entries = []driver.DocEntry{}
			}
			for _, d := range r.Bag.Items() {
				doc.Diagnostics = append(doc.Diagnostics, docfmt.DiagnosticJSON{
					Severity: d.Severity.String(),
					Code:     d.Code.ID(),
					Message:  d.Message,
				})
			}
			docs = append(docs, doc)
		}
		return docfmt.DocumentsJSON(os.Stdout, docs)
	}

	stdoutOpts := docfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	hadErrors := false
	for _, r := range results {
		if r.Bag != nil && r.Bag.Len() > 0 {
			// у каталожных результатов нет общего FileSet, печатаем без контекста
			docfmt.Pretty(os.Stderr, r.Bag, nil, docfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
			hadErrors = hadErrors || r.Bag.HasErrors()
		}
		if err := docfmt.EntriesPretty(os.Stdout, r.Path, r.Entries, stdoutOpts); err != nil {
			return err
		}
	}
	if hadErrors {
		return fmt.Errorf("extraction finished with errors")
	}
	return nil
}

func runExtractWithUI(ctx context.Context, dir string, opts driver.DirOptions) ([]driver.DirResult, error) {
	files, err := driver.ListSourceFiles(dir, opts.Exts)
	if err != nil {
		return nil, err
	}
	return runDirWithUI(ctx, "extracting "+dir, files, dir, opts)
}
