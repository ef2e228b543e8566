package preflight

const bytesPerMiB = 1024 * 1024

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// FileStatus describes one catalog entry as found on disk.
type FileStatus struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Present   bool   `json:"present"`
	SizeBytes int64  `json:"size_bytes"`
	Detail    string `json:"detail,omitempty"`
}

// SizeMiB returns the file size in mebibytes.
func (f FileStatus) SizeMiB() float64 {
	return float64(f.SizeBytes) / bytesPerMiB
}

// Empty reports whether a present file has no content.
func (f FileStatus) Empty() bool {
	return f.Present && f.SizeBytes == 0
}

// Report is the outcome of checking a data directory against the catalog.
type Report struct {
	Dir        string       `json:"dir"`
	Files      []FileStatus `json:"files"`
	Missing    []string     `json:"missing"`
	TotalBytes int64        `json:"total_bytes"`
}

// OK reports whether every required file is present.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}

// Present returns the statuses of files that were found, in catalog order.
func (r Report) Present() []FileStatus {
	out := make([]FileStatus, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Present {
			out = append(out, f)
		}
	}
	return out
}

// TotalMiB returns the combined size of present files in mebibytes.
func (r Report) TotalMiB() float64 {
	return float64(r.TotalBytes) / bytesPerMiB
}

// EmptyFiles returns names of present files with zero size.
func (r Report) EmptyFiles() []string {
	var out []string
	for _, f := range r.Files {
		if f.Empty() {
			out = append(out, f.Name)
		}
	}
	return out
}
