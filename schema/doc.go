// Package schema classifies content items into schema.org types and
// synthesizes the JSON-LD node list for a site.
//
// The pipeline is:
//
//	items → ClassifyAll → Aggregate(site, classified, override) → Result
//
// Every top-level node in a Result carries @context "https://schema.org";
// nested nodes (author, publisher, provider) carry @type only. Empty input
// fields never produce null or empty-string output fields.
package schema
