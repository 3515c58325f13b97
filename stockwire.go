// Package stockwire aggregates equities news from heterogeneous web
// sources and APIs into a compact deduplicated text corpus. It discovers
// article candidates per source, extracts and normalizes article bodies,
// filters out error pages and stubs, and removes near-duplicate stories
// republished across outlets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, trafilatura/).
package stockwire
