// Package placelist provides a local bucket-list location manager.
// It keeps map locations in a local database, drafts edits to them
// through an edit session, and enriches them with nearby Wikipedia
// pages fetched from the MediaWiki geosearch API.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// wikipedia/, gpx/).
package placelist
