package schema

import (
	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// BuildOrganization builds the top-level Organization node. It returns nil
// when the site has no organization metadata.
func BuildOrganization(site content.Site) Node {
	org := site.Organization
	if org.IsZero() {
		return nil
	}
	n := NewNode(schemaorg.TypeOrganization, true).
		Set(schemaorg.PropName, org.Name).
		SetURL(schemaorg.PropURL, ResolveURL(site, org.URL)).
		SetURL(schemaorg.PropLogo, ResolveURL(site, org.Logo))

	sameAs := make([]string, 0, len(org.SameAs))
	for _, s := range org.SameAs {
		if u := ResolveURL(site, s); u != "" {
			sameAs = append(sameAs, u)
		}
	}
	return n.SetStrings(schemaorg.PropSameAs, sameAs)
}

// BuildPerson builds a nested Person node. It returns nil for an author
// without a name.
func BuildPerson(site content.Site, author content.Author) Node {
	if Text(author.Name) == "" {
		return nil
	}
	return NewNode(schemaorg.TypePerson, false).
		Set(schemaorg.PropName, author.Name).
		Set(schemaorg.PropJobTitle, author.Title).
		SetURL(schemaorg.PropURL, ResolveURL(site, author.URL)).
		SetURL(schemaorg.PropImage, ResolveURL(site, author.ImageURL))
}

// BuildWebSite builds the top-level WebSite node.
func BuildWebSite(site content.Site) Node {
	return NewNode(schemaorg.TypeWebSite, true).
		Set(schemaorg.PropName, site.Title).
		SetURL(schemaorg.PropURL, SiteURL(site)).
		Set(schemaorg.PropDescription, site.Tagline).
		Set(schemaorg.PropInLanguage, site.DefaultLocale())
}

// BuildService builds a top-level Service node from the item's service hint.
// It returns nil when the item has no hint. provider is embedded as given.
func BuildService(site content.Site, item content.Item, provider Node) Node {
	hint := item.Service
	if hint == nil {
		return nil
	}
	name := hint.Name
	if Text(name) == "" {
		name = item.Title
	}
	description := hint.Description
	if Text(description) == "" {
		description = item.Description
	}
	return NewNode(schemaorg.TypeService, true).
		Set(schemaorg.PropName, name).
		Set(schemaorg.PropServiceType, hint.Type).
		Set(schemaorg.PropDescription, description).
		Set(schemaorg.PropAreaServed, hint.AreaServed).
		SetURL(schemaorg.PropURL, ResolveURL(site, item.Route)).
		SetNode(schemaorg.PropProvider, provider)
}

// BuildArticle builds a top-level Article or BlogPosting node. author is a
// Person node, a list of Person nodes or nil; publisher is an Organization
// node without @context or nil.
func BuildArticle(site content.Site, t schemaorg.Type, item content.Item, author any, publisher Node) Node {
	pageURL := ResolveURL(site, item.Route)
	n := NewNode(t, true).
		Set(schemaorg.PropHeadline, item.Title).
		Set(schemaorg.PropDescription, item.Description).
		SetDate(schemaorg.PropDatePublished, item.Published).
		SetDate(schemaorg.PropDateModified, item.Modified).
		SetURL(schemaorg.PropImage, ResolveURL(site, item.Image)).
		SetURL(schemaorg.PropURL, pageURL).
		SetStrings(schemaorg.PropKeywords, item.Keywords)

	if pageURL != "" {
		n[schemaorg.PropMainEntityOfPage] = Node{
			schemaorg.KeyType: string(schemaorg.TypeWebPage),
			schemaorg.KeyID:   pageURL,
		}
	}

	switch a := author.(type) {
	case Node:
		n.SetNode(schemaorg.PropAuthor, a)
	case []Node:
		if len(a) > 0 {
			n[schemaorg.PropAuthor] = a
		}
	}
	return n.SetNode(schemaorg.PropPublisher, publisher)
}
