// Package sitesearch provides a minimal self-hosted search appliance.
// It crawls a single site breadth-first from a seed URL, extracts the
// visible text of every page, persists the pages, and answers keyword
// queries by substring matching.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package sitesearch
