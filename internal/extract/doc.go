// Package extract pulls antagonist name lists out of comic wiki pages.
// It works on the rendered HTML using DOM-first analysis with fallback
// heuristics for the markup inconsistencies the wiki is known for.
package extract
