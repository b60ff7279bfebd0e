// Package zealdoc provides a local, CLI-based lookup tool over Dash/Zeal
// docsets. It reads a docset's search index, scores every entry against a
// free-text query and prints a stable, ranked list of symbols together with
// the location of their documentation on disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, etree/, goquery/).
package zealdoc
