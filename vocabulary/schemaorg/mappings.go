package schemaorg

// Section is a logical key of a base-schema override.
type Section string

// Known override sections.
const (
	SectionOrganization Section = "organization"
	SectionWebSite      Section = "website"
	SectionArticle      Section = "article"
	SectionService      Section = "service"
)

// SectionTypes maps known sections to the node types they are merged into.
var SectionTypes = map[Section][]Type{
	SectionOrganization: {TypeOrganization},
	SectionWebSite:      {TypeWebSite},
	SectionArticle:      {TypeArticle, TypeBlogPosting},
	SectionService:      {TypeService},
}

// KnownSections lists the known sections in merge order.
var KnownSections = []Section{
	SectionWebSite,
	SectionOrganization,
	SectionArticle,
	SectionService,
}

// IsKnownSection reports whether name is one of the known sections.
func IsKnownSection(name string) bool {
	_, ok := SectionTypes[Section(name)]
	return ok
}

// EmittedTypes lists every type the generator can emit, grouped by the role the
// generated component gives them. The order is stable for output reproducibility.
var EmittedTypes = []struct {
	Role  string
	Types []Type
}{
	{Role: "article", Types: []Type{TypeArticle, TypeBlogPosting}},
	{Role: "organization", Types: []Type{TypeOrganization}},
	{Role: "person", Types: []Type{TypePerson}},
	{Role: "service", Types: []Type{TypeService}},
	{Role: "website", Types: []Type{TypeWebSite}},
}
