package schema

import (
	"path"
	"strings"

	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Classified pairs a content item with its schema.org type. Type is empty for
// unclassified items.
type Classified struct {
	Item content.Item
	Type schemaorg.Type
}

// Classifier decides the schema.org type of content items.
type Classifier struct {
	locales []string
}

// NewClassifier creates a classifier that also treats /<locale>/ as a home
// route for every configured locale.
func NewClassifier(site content.Site) Classifier {
	return Classifier{locales: site.Locales()}
}

// Classify applies the rules in priority order:
//  1. author and publish date → BlogPosting
//  2. publish date only → Article
//  3. home route → WebSite
//
// Anything else is unclassified.
func (c Classifier) Classify(item content.Item) (schemaorg.Type, bool) {
	switch {
	case item.HasDate() && item.HasAuthor():
		return schemaorg.TypeBlogPosting, true
	case item.HasDate():
		return schemaorg.TypeArticle, true
	case IsHomeRoute(item.Route, c.locales):
		return schemaorg.TypeWebSite, true
	}
	return "", false
}

// Classify classifies item without locale-aware home routes.
func Classify(item content.Item) (schemaorg.Type, bool) {
	return Classifier{}.Classify(item)
}

// ClassifyAll classifies every item, keeping input order.
func ClassifyAll(site content.Site, items []content.Item) []Classified {
	c := NewClassifier(site)
	out := make([]Classified, len(items))
	for i, item := range items {
		t, _ := c.Classify(item)
		out[i] = Classified{Item: item, Type: t}
	}
	return out
}

// IsHomeRoute reports whether route is the site root or a locale root.
func IsHomeRoute(route string, locales []string) bool {
	r := strings.TrimSpace(route)
	if r == "" {
		return true
	}
	r = path.Clean("/" + r)
	if r == "/" {
		return true
	}
	for _, l := range locales {
		if l != "" && r == "/"+l {
			return true
		}
	}
	return false
}
