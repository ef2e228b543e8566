package samples

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"olistcheck/internal/dataset"
	"olistcheck/internal/fileutil"
	"olistcheck/internal/logging"
	"olistcheck/internal/preflight"
)

const lockFileName = ".olistcheck-samples.lock"

// Written describes one placeholder file produced by Generate.
type Written struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Generator writes placeholder files into a data directory.
type Generator struct {
	Dir    string
	Prefix string
	logger *slog.Logger
}

// NewGenerator builds a generator for dir. An empty prefix falls back to
// dataset.SamplePrefix.
func NewGenerator(dir, prefix string, logger *slog.Logger) *Generator {
	if prefix == "" {
		prefix = dataset.SamplePrefix
	}
	return &Generator{
		Dir:    dir,
		Prefix: prefix,
		logger: logging.NewComponentLogger(logger, "samples"),
	}
}

// Generate creates the data directory if needed and writes one placeholder
// per catalog entry containing only its header line. Existing placeholders
// are replaced.
func (g *Generator) Generate(ctx context.Context, catalog []dataset.Descriptor) ([]Written, error) {
	if g.Dir == "" {
		return nil, errors.New("samples: data directory not set")
	}
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %q: %w", g.Dir, err)
	}
	if access := preflight.CheckDirectoryAccess("Data directory", g.Dir); !access.Passed {
		return nil, fmt.Errorf("data directory not writable: %s", access.Detail)
	}

	// The lock file is never removed: unlinking it would let a waiting run
	// lock the orphaned inode while a newer run locks a fresh file.
	lock := flock.New(filepath.Join(g.Dir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another olistcheck run is writing samples in %s", g.Dir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			g.logger.Warn("release sample lock failed", logging.Error(err))
		}
	}()

	written := make([]Written, 0, len(catalog))
	for _, d := range catalog {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		name := dataset.SampleName(g.Prefix, d.Filename)
		path := filepath.Join(g.Dir, name)
		if err := fileutil.WriteFileAtomic(path, []byte(d.Header+"\n"), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		g.logger.Info("sample written", slog.String(logging.FieldFile, name), slog.String(logging.FieldPath, path))
		written = append(written, Written{Name: name, Path: path})
	}
	return written, nil
}
