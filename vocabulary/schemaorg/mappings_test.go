package schemaorg_test

import (
	"testing"

	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

func TestSectionTypes(t *testing.T) {
	tests := []struct {
		section schemaorg.Section
		want    []schemaorg.Type
	}{
		{schemaorg.SectionOrganization, []schemaorg.Type{schemaorg.TypeOrganization}},
		{schemaorg.SectionWebSite, []schemaorg.Type{schemaorg.TypeWebSite}},
		{schemaorg.SectionArticle, []schemaorg.Type{schemaorg.TypeArticle, schemaorg.TypeBlogPosting}},
		{schemaorg.SectionService, []schemaorg.Type{schemaorg.TypeService}},
	}

	for _, tc := range tests {
		t.Run(string(tc.section), func(t *testing.T) {
			got, ok := schemaorg.SectionTypes[tc.section]
			if !ok {
				t.Fatalf("section %q not in SectionTypes", tc.section)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("got %q at %d, want %q", got[i], i, tc.want[i])
				}
			}
		})
	}
}

func TestKnownSectionsAreMapped(t *testing.T) {
	for _, s := range schemaorg.KnownSections {
		if !schemaorg.IsKnownSection(string(s)) {
			t.Errorf("known section %q is not mapped", s)
		}
	}
	if schemaorg.IsKnownSection("faq") {
		t.Error("faq should not be a known section")
	}
}

func TestIsArticle(t *testing.T) {
	if !schemaorg.TypeArticle.IsArticle() || !schemaorg.TypeBlogPosting.IsArticle() {
		t.Error("Article and BlogPosting should be article types")
	}
	for _, typ := range []schemaorg.Type{schemaorg.TypeWebSite, schemaorg.TypeOrganization, schemaorg.TypePerson, schemaorg.TypeService} {
		if typ.IsArticle() {
			t.Errorf("%s should not be an article type", typ)
		}
	}
}

func TestEmittedTypesCoverVocabulary(t *testing.T) {
	seen := make(map[schemaorg.Type]bool)
	for _, group := range schemaorg.EmittedTypes {
		for _, typ := range group.Types {
			seen[typ] = true
		}
	}
	for _, typ := range []schemaorg.Type{
		schemaorg.TypeArticle,
		schemaorg.TypeBlogPosting,
		schemaorg.TypeOrganization,
		schemaorg.TypePerson,
		schemaorg.TypeService,
		schemaorg.TypeWebSite,
	} {
		if !seen[typ] {
			t.Errorf("%s missing from EmittedTypes", typ)
		}
	}
}
