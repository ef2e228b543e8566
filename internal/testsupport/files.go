package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"olistcheck/internal/dataset"
)

// WriteFile fills the target path with the requested number of bytes using a
// simple repeating pattern. A size < 0 writes a single byte; zero creates an
// empty file.
func WriteFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size < 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := min(int64(chunkSize), remaining)
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}

// WriteDatasets creates every catalog file in dir except those named in skip.
// Each file holds size filler bytes.
func WriteDatasets(t testing.TB, dir string, size int64, skip ...string) {
	t.Helper()

	skipped := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		skipped[name] = struct{}{}
	}
	for _, d := range dataset.Required() {
		if _, ok := skipped[d.Filename]; ok {
			continue
		}
		WriteFile(t, filepath.Join(dir, d.Filename), size)
	}
}
