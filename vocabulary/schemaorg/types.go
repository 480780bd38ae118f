package schemaorg

// Context is the JSON-LD @context value carried by every top-level node.
const Context = "https://schema.org"

// JSON-LD keywords.
const (
	KeyContext = "@context"
	KeyType    = "@type"
	KeyID      = "@id"
)

// Type is a schema.org type name as it appears in @type.
type Type string

// Types emitted by the generator.
const (
	// TypeArticle is used for dated content without an author.
	TypeArticle Type = "Article"
	// TypeBlogPosting is used for dated content with at least one author.
	TypeBlogPosting Type = "BlogPosting"
	// TypeWebSite describes the site itself.
	TypeWebSite Type = "WebSite"
	// TypeOrganization describes the publisher of the site.
	TypeOrganization Type = "Organization"
	// TypePerson describes an author.
	TypePerson Type = "Person"
	// TypeService describes a product or service page.
	TypeService Type = "Service"
	// TypeWebPage is the mainEntityOfPage target of an article.
	TypeWebPage Type = "WebPage"
)

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// IsArticle reports whether t is one of the article types.
func (t Type) IsArticle() bool {
	return t == TypeArticle || t == TypeBlogPosting
}

// Property names used by the builders.
const (
	PropName             = "name"
	PropURL              = "url"
	PropLogo             = "logo"
	PropImage            = "image"
	PropSameAs           = "sameAs"
	PropDescription      = "description"
	PropInLanguage       = "inLanguage"
	PropHeadline         = "headline"
	PropDatePublished    = "datePublished"
	PropDateModified     = "dateModified"
	PropAuthor           = "author"
	PropPublisher        = "publisher"
	PropProvider         = "provider"
	PropKeywords         = "keywords"
	PropMainEntityOfPage = "mainEntityOfPage"
	PropJobTitle         = "jobTitle"
	PropServiceType      = "serviceType"
	PropAreaServed       = "areaServed"
)
