// ABOUTME: Domain types for website snapshots stored on disk
// ABOUTME: A snapshot is one timestamp-named directory holding a captured HTML file

package domain

import "time"

// Snapshot is one captured copy of a page, stored under a timestamp-named
// directory inside a site's snapshot root.
type Snapshot struct {
	// Name is the timestamp directory name, e.g. "20260826T101500".
	Name string `json:"name"`

	// Path is the absolute or root-relative path of the snapshot HTML file.
	Path string `json:"path"`

	// Timestamp is parsed from Name when it matches a known layout;
	// zero when the directory name is not a recognizable timestamp.
	Timestamp time.Time `json:"timestamp,omitempty"`

	// Title is an optional human-readable page title recorded at capture time.
	Title string `json:"title,omitempty"`
}

// SnapshotPair is two consecutive snapshots of the same site, oldest first.
type SnapshotPair struct {
	Old Snapshot `json:"old"`
	New Snapshot `json:"new"`
}
