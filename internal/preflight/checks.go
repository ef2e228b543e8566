package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"olistcheck/internal/dataset"
	"olistcheck/internal/fileutil"
)

// CheckDataFiles stats each catalog entry inside dir. Missing entries and
// entries that are not regular files are reported as missing. Any other stat
// failure aborts the check and is returned.
func CheckDataFiles(dir string, catalog []dataset.Descriptor) (Report, error) {
	report := Report{
		Dir:     dir,
		Files:   make([]FileStatus, 0, len(catalog)),
		Missing: []string{},
	}
	for _, d := range catalog {
		path := filepath.Join(dir, d.Filename)
		status := FileStatus{Name: d.Filename, Path: path}

		info, err := os.Stat(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			status.Detail = "not found"
		case err != nil:
			return Report{}, fmt.Errorf("stat %s: %w", path, err)
		case !fileutil.IsRegularFile(info):
			status.Detail = "not a regular file"
		default:
			status.Present = true
			status.SizeBytes = info.Size()
			if status.SizeBytes == 0 {
				status.Detail = "empty"
			}
		}

		if status.Present {
			report.TotalBytes += status.SizeBytes
		} else {
			report.Missing = append(report.Missing, d.Filename)
		}
		report.Files = append(report.Files, status)
	}
	return report, nil
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}
