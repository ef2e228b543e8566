package samples

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"olistcheck/internal/dataset"
	"olistcheck/internal/logging"
	"olistcheck/internal/testsupport"
)

func TestGenerateCreatesDirectoryAndHeaders(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	gen := NewGenerator(dir, "", logging.NewNop())

	written, err := gen.Generate(context.Background(), dataset.Required())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(written) != 6 {
		t.Fatalf("expected 6 files, got %d", len(written))
	}

	for i, d := range dataset.Required() {
		if written[i].Name != "sample_"+d.Filename {
			t.Fatalf("file %d: unexpected name %q", i, written[i].Name)
		}
		content, err := os.ReadFile(filepath.Join(dir, "sample_"+d.Filename))
		if err != nil {
			t.Fatalf("read %s: %v", written[i].Name, err)
		}
		if string(content) != d.Header+"\n" {
			t.Fatalf("%s: unexpected content %q", written[i].Name, content)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, lockFileName)); err != nil {
		t.Fatalf("expected lock file to stay in place: %v", err)
	}
}

func TestGenerateReusesLeftoverLockFile(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, lockFileName)

	for run := 1; run <= 2; run++ {
		if _, err := NewGenerator(dir, "", nil).Generate(context.Background(), dataset.Required()); err != nil {
			t.Fatalf("run %d: Generate: %v", run, err)
		}
		if _, err := os.Stat(lockPath); err != nil {
			t.Fatalf("run %d: lock file missing after release: %v", run, err)
		}
	}

	// Released, not just left behind: another holder can take it now.
	other := flock.New(lockPath)
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("expected lock to be free after Generate: ok=%v err=%v", ok, err)
	}
	defer other.Unlock()
}

func TestGenerateOverwritesExistingSamples(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "sample_olist_orders_dataset.csv")
	if err := os.WriteFile(stale, []byte("stale\nrows\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewGenerator(dir, "", nil).Generate(context.Background(), dataset.Required()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	content, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "stale") {
		t.Fatalf("expected sample to be replaced, got %q", content)
	}
}

func TestGenerateLeavesRealDatasetsAlone(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "olist_orders_dataset.csv")
	if err := os.WriteFile(real, []byte("real data\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGenerator(dir, "", nil).Generate(context.Background(), dataset.Required()); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	content, err := os.ReadFile(real)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "real data\n" {
		t.Fatalf("real dataset modified: %q", content)
	}
}

func TestGenerateRespectsHeldLock(t *testing.T) {
	dir := t.TempDir()
	held := flock.New(filepath.Join(dir, lockFileName))
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("take lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	_, err = NewGenerator(dir, "", nil).Generate(context.Background(), dataset.Required())
	if err == nil || !strings.Contains(err.Error(), "another olistcheck run") {
		t.Fatalf("expected lock contention error, got %v", err)
	}
}

func TestGenerateStopsOnCancelledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := NewGenerator(dir, "", nil).Generate(ctx, dataset.Required())
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(written) != 0 {
		t.Fatalf("expected no files written, got %d", len(written))
	}
}

func TestGenerateRejectsFileAsDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGenerator(file, "", nil).Generate(context.Background(), dataset.Required()); err == nil {
		t.Fatal("expected error when data dir is a file")
	}
}

func TestGenerateOneHeaderFilePerEntry(t *testing.T) {
	catalog := dataset.Required()
	rapid.Check(t, func(rt *rapid.T) {
		prefix := rapid.StringMatching(`[a-z]{1,8}_`).Draw(rt, "prefix")
		dir, err := os.MkdirTemp(t.TempDir(), "prop")
		require.NoError(rt, err)
		dir = filepath.Join(dir, "data")

		written, err := NewGenerator(dir, prefix, nil).Generate(context.Background(), catalog)
		require.NoError(rt, err)
		require.Len(rt, written, len(catalog))

		samples, err := filepath.Glob(filepath.Join(dir, prefix+"*"))
		require.NoError(rt, err)
		require.Len(rt, samples, len(catalog))

		for i, d := range catalog {
			require.Equal(rt, prefix+d.Filename, written[i].Name)
			content, err := os.ReadFile(written[i].Path)
			require.NoError(rt, err)
			require.Equal(rt, d.Header+"\n", string(content))
			require.Equal(rt, 1, strings.Count(string(content), "\n"))
		}
	})
}

func TestGenerateUsesConfiguredPrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSamplePrefix("example_"))

	written, err := NewGenerator(cfg.Paths.DataDir, cfg.Samples.Prefix, nil).Generate(context.Background(), dataset.Required())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, w := range written {
		if !strings.HasPrefix(w.Name, "example_") {
			t.Fatalf("expected example_ prefix, got %q", w.Name)
		}
		if filepath.Dir(w.Path) != cfg.Paths.DataDir {
			t.Fatalf("sample written outside data dir: %s", w.Path)
		}
	}
}
