// Package gpa provides a game platform analyzer: it scrapes game listings
// from storefront pages, normalizes them into structured records via an
// external extraction service, and tracks the outcome of every scrape
// attempt durably.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, rod/, gemini/).
package gpa
