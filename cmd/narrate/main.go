// Command narrate plays a branching-narrative story in an interactive
// terminal player.
//
// Usage:
//
//	narrate -source story.ink
//	narrate -source stories/ -start chapter_two
//
// Flags:
//
//	-source string     Path to a story file, or a directory of story
//	                    fragments to concatenate (matched with **/*.ink)
//	-start string       Address to jump to immediately after starting
//	-log-level string   Diagnostic log level: debug, info, warn, error (default "warn")
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stringhandler/narrate"
	"github.com/stringhandler/narrate/internal/diag"
	"github.com/stringhandler/narrate/internal/linetok"
	"github.com/stringhandler/narrate/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "narrate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		sourcePath = flag.String("source", "", "Path to a story file or directory of fragments")
		start      = flag.String("start", "", "Address to jump to immediately after starting")
		logLevel   = flag.String("log-level", "warn", "Diagnostic log level: debug, info, warn, error")
	)
	flag.Parse()

	if *sourcePath == "" {
		return fmt.Errorf("-source is required")
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", *logLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	source, err := loadSource(*sourcePath)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	sessionID := uuid.NewString()
	sink := diag.NewSink(os.Stderr, sessionID)

	story, err := narrate.FromSource(source, linetok.New(), narrate.WithDiagSink(sink))
	if err != nil {
		return fmt.Errorf("parse story: %w", err)
	}

	return tui.Run(story, sink, *start)
}

// loadSource reads a single story file, or concatenates every "*.ink" file
// under a directory (in lexical order) separated by a blank line so each
// fragment's knots/stitches parse as one combined source.
func loadSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	matches, err := doublestar.Glob(os.DirFS(path), "**/*.ink")
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no *.ink files found under %s", path)
	}

	var b strings.Builder
	for _, m := range matches {
		data, err := fs.ReadFile(os.DirFS(path), m)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", filepath.Join(path, m), err)
		}
		b.Write(data)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
