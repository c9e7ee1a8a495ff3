package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phpaudit/error-tracking-analysis/composer"
	"github.com/phpaudit/error-tracking-analysis/config"
)

const watchDebounce = 300 * time.Millisecond

// runWatch re-runs the analysis whenever the manifest or a designated source
// file changes. Blocks until interrupted.
func runWatch(projectPath string, cfg config.Config, verbose bool) {
	runWatchWithStop(projectPath, cfg, verbose, nil)
}

func runWatchWithStop(projectPath string, cfg config.Config, verbose bool, stop <-chan struct{}) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: watch init failed: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	watched := watchedPaths(projectPath, cfg)
	for dir := range watchDirs(watched) {
		if err := watcher.Add(dir); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "watch: cannot watch %s: %v\n", dir, err)
		}
	}

	runAnalysis(projectPath, cfg, verbose)

	var timer *time.Timer
	for {
		select {
		case <-stop:
			return
		case ev := <-watcher.Events:
			if !watched[filepath.Clean(ev.Name)] {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				fmt.Printf("\n%s changed, re-running analysis\n", ev.Name)
				runAnalysis(projectPath, cfg, verbose)
			})
		case err := <-watcher.Errors:
			fmt.Fprintf(os.Stderr, "ERROR: watch error: %v\n", err)
		}
	}
}

// watchedPaths is the set of files whose changes should trigger a re-run:
// the manifest plus every designated source file.
func watchedPaths(projectPath string, cfg config.Config) map[string]bool {
	paths := map[string]bool{
		filepath.Clean(filepath.Join(projectPath, composer.ManifestFile)): true,
	}
	for _, rel := range cfg.SourceFiles {
		paths[filepath.Clean(filepath.Join(projectPath, rel))] = true
	}
	return paths
}

// watchDirs returns the parent directories of the watched files that exist.
// fsnotify watches directories, not yet-to-be-created files, so watching the
// parents also catches files that appear later.
func watchDirs(watched map[string]bool) map[string]struct{} {
	dirs := make(map[string]struct{})
	for path := range watched {
		dir := filepath.Dir(path)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs[dir] = struct{}{}
		}
	}
	return dirs
}
