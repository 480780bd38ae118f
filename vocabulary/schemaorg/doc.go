// Package schemaorg provides the schema.org vocabulary terms used by structdata.
//
// The vocabulary is deliberately small. It covers the types a documentation or
// blog site needs in its page head:
//   - Site level: WebSite, Organization
//   - Content level: Article, BlogPosting, Service
//   - Nested agents: Person (author), Organization (publisher, provider)
//
// # Sections
//
// A base-schema override is keyed by logical section rather than by type.
// SectionTypes maps each known section to the schema.org type it targets:
//
//	organization → Organization
//	website      → WebSite
//	article      → Article, BlogPosting
//	service      → Service
//
// Sections not listed here are passed through untouched.
//
// # Usage
//
//	node := schema.Node{
//	    schemaorg.KeyContext: schemaorg.Context,
//	    schemaorg.KeyType:    string(schemaorg.TypeWebSite),
//	}
package schemaorg
