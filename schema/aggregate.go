package schema

import (
	"log/slog"

	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Role says which part of the aggregation produced an entry. It does not
// change when an override rewrites the node's @type.
type Role string

const (
	RoleWebSite      Role = "website"
	RoleOrganization Role = "organization"
	RoleArticle      Role = "article"
	RoleService      Role = "service"
	RolePassthrough  Role = "passthrough"
)

// Entry is one top-level node of the result. Route is empty for site-level
// nodes that belong on every page.
type Entry struct {
	Role  Role
	Route string
	Node  Node
}

// Result is the complete, ordered structured data of one run.
type Result struct {
	// Entries holds WebSite, Organization, articles, services and
	// passthrough sections, in that order.
	Entries []Entry

	// Classified is the classification of every input item, in input order.
	Classified []Classified

	// Skipped lists base-schema sections that were not merged.
	Skipped []SkippedSection
}

// Nodes returns the top-level nodes in output order.
func (r Result) Nodes() []Node {
	nodes := make([]Node, len(r.Entries))
	for i, e := range r.Entries {
		nodes[i] = e.Node
	}
	return nodes
}

// SiteNodes returns the nodes rendered on every page.
func (r Result) SiteNodes() []Node {
	var nodes []Node
	for _, e := range r.Entries {
		if e.Route == "" {
			nodes = append(nodes, e.Node)
		}
	}
	return nodes
}

// RouteNodes returns the route-bound entries with the given role, in output order.
func (r Result) RouteNodes(role Role) []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Route != "" && e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// CountByType counts top-level nodes per @type.
func (r Result) CountByType() map[schemaorg.Type]int {
	counts := make(map[schemaorg.Type]int)
	for _, e := range r.Entries {
		counts[e.Node.Type()]++
	}
	return counts
}

// articleRef is a member of the articlesWithAuthorPublisher working set.
type articleRef struct {
	item content.Item
	typ  schemaorg.Type
}

// Aggregator assembles the node list for a site.
type Aggregator struct {
	site   content.Site
	logger *slog.Logger
}

// NewAggregator creates an aggregator for site.
func NewAggregator(site content.Site, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{site: site, logger: logger}
}

// Aggregate classifies items and builds the result. See Aggregator.Aggregate.
func Aggregate(site content.Site, items []content.Item, override *Override, logger *slog.Logger) Result {
	return NewAggregator(site, logger).Aggregate(ClassifyAll(site, items), override)
}

// Aggregate builds the ordered node list:
//
//	WebSite, Organization (when known), one Article/BlogPosting per classified
//	item, one Service per service hint, then passthrough override sections.
//
// Known override sections are merged into their nodes before the publisher and
// provider copies are taken, so embedded copies reflect the override.
func (a *Aggregator) Aggregate(classified []Classified, override *Override) Result {
	if override == nil {
		override = &Override{}
	}
	for _, s := range override.Skipped {
		a.logger.Warn("Skipping base schema section", slog.String("section", s.Name), slog.String("error", s.Err.Error()))
	}

	result := Result{Classified: classified, Skipped: override.Skipped}

	website := BuildWebSite(a.site)
	var articles []articleRef
	var services []content.Item
	for _, c := range classified {
		switch {
		case c.Type.IsArticle():
			articles = append(articles, articleRef{item: c.Item, typ: c.Type})
		case c.Type == schemaorg.TypeWebSite:
			if _, ok := website[schemaorg.PropDescription]; !ok {
				website.Set(schemaorg.PropDescription, c.Item.Description)
			}
		}
		if c.Item.Service != nil {
			services = append(services, c.Item)
		}
	}

	if override.WebSite != nil {
		website = Merge(website, override.WebSite)
	}
	result.Entries = append(result.Entries, Entry{Role: RoleWebSite, Node: website})

	org := BuildOrganization(a.site)
	if override.Organization != nil {
		if org == nil {
			org = NewNode(schemaorg.TypeOrganization, true)
		}
		org = Merge(org, override.Organization)
	}
	var publisher Node
	if org != nil {
		result.Entries = append(result.Entries, Entry{Role: RoleOrganization, Node: org})
		publisher = Compact(org.Nested())
	}

	persons := make(map[content.Author]Node)
	for _, ref := range articles {
		node := BuildArticle(a.site, ref.typ, ref.item, a.authorsFor(ref.item, persons), publisher.Clone())
		if override.Article != nil {
			node = Merge(node, override.Article)
		}
		result.Entries = append(result.Entries, Entry{Role: RoleArticle, Route: ref.item.Route, Node: node})
	}

	for _, item := range services {
		node := BuildService(a.site, item, publisher.Clone())
		if override.Service != nil {
			node = Merge(node, override.Service)
		}
		result.Entries = append(result.Entries, Entry{Role: RoleService, Route: item.Route, Node: node})
	}

	for _, s := range override.Extra {
		node, _ := asNode(s.Value)
		result.Entries = append(result.Entries, Entry{Role: RolePassthrough, Node: node.Clone()})
	}

	for _, e := range result.Entries {
		finalize(e.Node)
	}

	a.logger.Debug("Aggregated structured data",
		slog.Int("nodes", len(result.Entries)),
		slog.Int("articles", len(articles)),
		slog.Int("services", len(services)))
	return result
}

// authorsFor returns inline copies of the item's Person nodes. Each distinct
// author is built once per run.
func (a *Aggregator) authorsFor(item content.Item, persons map[content.Author]Node) any {
	var nodes []Node
	for _, author := range item.Authors {
		person, ok := persons[author]
		if !ok {
			person = BuildPerson(a.site, author)
			persons[author] = person
		}
		if person != nil {
			nodes = append(nodes, person.Clone())
		}
	}
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	}
	return nodes
}

// finalize applies the output rules to a top-level node: no empty
// values, @context present at the top and absent below.
func finalize(n Node) {
	Compact(n)
	stripNestedContext(n)
	if _, ok := n[schemaorg.KeyContext]; !ok {
		n[schemaorg.KeyContext] = schemaorg.Context
	}
}
