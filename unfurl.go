// Package unfurl resolves link-preview metadata (title, description,
// preview image, site name, author, canonical URL) from raw HTML text.
// It reconciles four partially overlapping metadata vocabularies
// (OpenGraph, Twitter Card, Schema.org itemprop metas and embedded
// JSON-LD, and generic fallbacks), merging candidates under a fixed
// priority order into a single normalized record.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, sqlite/). The resolution engine itself lives in resolve/.
package unfurl
