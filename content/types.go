// Package content models the site and content metadata consumed by the
// structured-data generator, and loads it from a host manifest or from the
// front matter of Markdown sources.
package content

import (
	"strings"
	"time"
)

// Site is the immutable site context for one run.
type Site struct {
	// URL is the canonical base URL, e.g. https://example.com
	URL string `yaml:"url"`
	// BaseURL is the path prefix the site is served under (default "/").
	BaseURL      string        `yaml:"baseUrl,omitempty"`
	Title        string        `yaml:"title"`
	Tagline      string        `yaml:"tagline,omitempty"`
	Organization *Organization `yaml:"organization,omitempty"`
	I18n         *I18n         `yaml:"i18n,omitempty"`
}

// Organization describes the publisher of the site.
type Organization struct {
	Name   string   `yaml:"name"`
	URL    string   `yaml:"url,omitempty"`
	Logo   string   `yaml:"logo,omitempty"`
	SameAs []string `yaml:"sameAs,omitempty"`
}

// IsZero reports whether the organization carries no usable metadata.
func (o *Organization) IsZero() bool {
	if o == nil {
		return true
	}
	return strings.TrimSpace(o.Name) == "" &&
		strings.TrimSpace(o.URL) == "" &&
		strings.TrimSpace(o.Logo) == "" &&
		len(o.SameAs) == 0
}

// I18n holds the locale configuration of the site.
type I18n struct {
	Locales       []string `yaml:"locales"`
	DefaultLocale string   `yaml:"defaultLocale"`
}

// Locales returns the configured locales, or nil when i18n is not configured.
func (s Site) Locales() []string {
	if s.I18n == nil {
		return nil
	}
	return s.I18n.Locales
}

// DefaultLocale returns the default locale, falling back to the first
// configured locale.
func (s Site) DefaultLocale() string {
	if s.I18n == nil {
		return ""
	}
	if s.I18n.DefaultLocale != "" {
		return s.I18n.DefaultLocale
	}
	if len(s.I18n.Locales) > 0 {
		return s.I18n.Locales[0]
	}
	return ""
}

// Kind is the content type hint of an item.
type Kind string

// Content kinds.
const (
	KindBlog Kind = "blog"
	KindDocs Kind = "docs"
	KindPage Kind = "page"
)

// Author is the author metadata of a content item.
type Author struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title,omitempty"`
	URL      string `yaml:"url,omitempty"`
	ImageURL string `yaml:"image_url,omitempty"`
}

// Service is the service hint of a product or service page.
type Service struct {
	Name        string `yaml:"name,omitempty"`
	Type        string `yaml:"serviceType,omitempty"`
	Description string `yaml:"description,omitempty"`
	AreaServed  string `yaml:"areaServed,omitempty"`
}

// Item is one page, blog post or doc entry.
type Item struct {
	Route       string    `yaml:"route"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description,omitempty"`
	Authors     []Author  `yaml:"authors,omitempty"`
	Published   time.Time `yaml:"date,omitempty"`
	Modified    time.Time `yaml:"lastUpdate,omitempty"`
	Image       string    `yaml:"image,omitempty"`
	Keywords    []string  `yaml:"keywords,omitempty"`
	Kind        Kind      `yaml:"kind,omitempty"`
	Service     *Service  `yaml:"service,omitempty"`

	// Source is the file the item was read from, if any.
	Source string `yaml:"-"`
}

// HasAuthor reports whether at least one author has a name.
func (i Item) HasAuthor() bool {
	for _, a := range i.Authors {
		if strings.TrimSpace(a.Name) != "" {
			return true
		}
	}
	return false
}

// HasDate reports whether the item has a publish date.
func (i Item) HasDate() bool {
	return !i.Published.IsZero()
}
