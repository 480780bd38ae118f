package content

import (
	"testing"
	"time"
)

func TestItemHasAuthor(t *testing.T) {
	tests := []struct {
		name    string
		authors []Author
		want    bool
	}{
		{"no authors", nil, false},
		{"blank name", []Author{{Name: "  ", URL: "https://example.com"}}, false},
		{"named author", []Author{{Name: "Jane"}}, true},
		{"second author named", []Author{{}, {Name: "Jane"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Item{Authors: tt.authors}).HasAuthor(); got != tt.want {
				t.Errorf("HasAuthor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemHasDate(t *testing.T) {
	if (Item{}).HasDate() {
		t.Error("zero item should not have a date")
	}
	if !(Item{Published: time.Now()}).HasDate() {
		t.Error("item with publish date should have a date")
	}
}

func TestSiteLocales(t *testing.T) {
	var site Site
	if site.Locales() != nil || site.DefaultLocale() != "" {
		t.Error("site without i18n should have no locales")
	}

	site.I18n = &I18n{Locales: []string{"fr", "en"}}
	if got := site.DefaultLocale(); got != "fr" {
		t.Errorf("DefaultLocale() = %q, want first locale fr", got)
	}

	site.I18n.DefaultLocale = "en"
	if got := site.DefaultLocale(); got != "en" {
		t.Errorf("DefaultLocale() = %q, want en", got)
	}
}

func TestOrganizationIsZero(t *testing.T) {
	var nilOrg *Organization
	if !nilOrg.IsZero() {
		t.Error("nil organization should be zero")
	}
	if !(&Organization{Name: " "}).IsZero() {
		t.Error("blank organization should be zero")
	}
	if (&Organization{Logo: "/img/logo.svg"}).IsZero() {
		t.Error("organization with a logo should not be zero")
	}
}
