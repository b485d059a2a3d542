package models

// Entry is one (issue, matched label) pair as it appears in a snapshot row.
type Entry struct {
	Title string
	Body  string
	Label string
}

// LabelSet names an include/exclude rule for one snapshot.
// A nil Exclude means no exclusion rule.
type LabelSet struct {
	Name    string   `yaml:"name"`
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// DownloadRequest contains everything needed to produce one snapshot.
type DownloadRequest struct {
	Owner   string
	Repo    string
	State   string
	Include []string
	Exclude []string

	// DataDir is the directory the snapshot is written into.
	DataDir string
}
