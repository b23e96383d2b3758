package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dhamidi/ktparse/kotlin/parser"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

type checkResult struct {
	file   string
	source []byte
	err    error
	stats  parser.Stats
}

func newCheckCmd() *cobra.Command {
	var jobs int
	var quiet bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "check <glob>...",
		Short: "Parse many Kotlin files and report the ones that fail",
		Long: `Parse every file matching the given patterns.

Patterns support ** to match any number of directories, for example
'src/**/*.kt'. Files ending in .kts are parsed as scripts.

With --watch, matching files are checked again whenever they change,
until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandGlobs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 && !watch {
				return fmt.Errorf("no files match %v", args)
			}

			results, err := checkFiles(files, jobs)
			if err != nil {
				return err
			}
			failed := report(results, quiet)

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return watchFiles(ctx, args, files, quiet)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files to parse at once")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "check files again when they change")

	return cmd
}

func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func checkFiles(files []string, jobs int) ([]checkResult, error) {
	results := make([]checkResult, len(files))
	g := new(errgroup.Group)
	g.SetLimit(max(jobs, 1))
	for i, file := range files {
		g.Go(func() error {
			res, err := checkFile(file)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(file string) (checkResult, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return checkResult{}, fmt.Errorf("read file: %w", err)
	}
	rule, _ := entryRule("", file)
	p := parser.New(rule, bytes.NewReader(data), parser.WithFile(file))
	p.Finish()
	return checkResult{file: file, source: data, err: p.Err(), stats: p.Stats()}, nil
}

// report prints one line per file and the errors of those that failed.
// It returns the number of failures.
func report(results []checkResult, quiet bool) int {
	failed := 0
	for _, res := range results {
		if res.err == nil {
			if !quiet {
				fmt.Printf("ok   %s (%d tokens, %d backtracks)\n", res.file, res.stats.Tokens, res.stats.Backtracks)
			}
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", res.file)
		printError(os.Stderr, res.err, res.source)
	}
	return failed
}

// watchFiles rechecks a file whenever it is written or created and still
// matches one of the patterns. Only directories that held a match at
// startup are watched.
func watchFiles(ctx context.Context, patterns, files []string, quiet bool) error {
	log := commonlog.GetLogger("ktparse.check")

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	dirs := make(map[string]bool)
	for _, file := range files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	log.Infof("watching %d directories", len(dirs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !matchesAny(patterns, ev.Name) {
				continue
			}
			res, err := checkFile(ev.Name)
			if err != nil {
				log.Warningf("%s", err)
				continue
			}
			report([]checkResult{res}, quiet)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err)
		}
	}
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.PathMatch(filepath.Clean(pattern), filepath.Clean(path)); ok {
			return true
		}
	}
	return false
}
