package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default discovery patterns, matched against slash-separated paths relative to
// the scanned directory.
var (
	DefaultInclude = []string{"**/*.{md,mdx}"}
	DefaultExclude = []string{"**/_*/**", "**/_*.{md,mdx}"}
)

// datePrefix matches Docusaurus date-prefixed blog file names and folders,
// e.g. 2024-01-15-launch.md or 2024-01-15-launch/index.md.
var datePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[-/](.+)$`)

// Sources tells the loader where content lives.
type Sources struct {
	SiteDir  string
	SrcDir   string
	BlogDir  string
	DocsDir  string
	Manifest string
	Include  []string
	Exclude  []string
}

// Loader builds the content item list from a manifest and from front matter.
type Loader struct {
	logger *slog.Logger
	titler cases.Caser
}

// NewLoader creates a new content loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger: logger,
		titler: cases.Title(language.English),
	}
}

// Load returns manifest items first, then blog posts, docs and Markdown pages.
// Each group is in lexical file order. When two items share a route the first
// one wins.
func (l *Loader) Load(src Sources) ([]Item, error) {
	var items []Item

	if src.Manifest != "" {
		manifest, err := LoadManifest(src.Manifest)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded content manifest", slog.String("path", src.Manifest), slog.Int("items", len(manifest)))
		items = append(items, manifest...)
	}

	groups := []struct {
		kind Kind
		dir  string
	}{
		{KindBlog, src.BlogDir},
		{KindDocs, src.DocsDir},
		{KindPage, joinIfSet(src.SrcDir, "pages")},
	}

	for _, g := range groups {
		if g.dir == "" {
			continue
		}
		dir := g.dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(src.SiteDir, dir)
		}
		found, err := l.scan(g.kind, dir, src)
		if err != nil {
			return nil, err
		}
		items = append(items, found...)
	}

	return dedupe(items, l.logger), nil
}

// scan reads every matching file below dir. A missing directory is skipped,
// as are drafts and unlisted items.
func (l *Loader) scan(kind Kind, dir string, src Sources) ([]Item, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		l.logger.Debug("Content directory not found, skipping", slog.String("kind", string(kind)), slog.String("dir", dir))
		return nil, nil
	}

	var authors Authors
	if kind == KindBlog {
		if authors, err = LoadAuthors(dir); err != nil {
			return nil, err
		}
	}

	include := src.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	exclude := src.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}

	var items []Item
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchAny(include, rel) || matchAny(exclude, rel) {
			return nil
		}

		fm, err := readFrontMatter(p)
		if err != nil {
			return err
		}
		for _, key := range []string{"draft", "unlisted"} {
			if fm.bool(key) {
				l.logger.Debug("Skipping content item", slog.String("path", p), slog.String("reason", key))
				return nil
			}
		}

		items = append(items, l.item(kind, filepath.Base(dir), rel, p, fm, authors))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	l.logger.Debug("Scanned content directory", slog.String("kind", string(kind)), slog.String("dir", dir), slog.Int("items", len(items)))
	return items, nil
}

// item converts decoded front matter to an Item.
func (l *Loader) item(kind Kind, base, rel, source string, fm frontMatter, authors Authors) Item {
	stem := strings.TrimSuffix(rel, path.Ext(rel))
	var fileDate time.Time

	if kind == KindBlog {
		if m := datePrefix.FindStringSubmatch(stem); m != nil {
			fileDate, _ = time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
			stem = m[4]
		}
	}
	if id := fm.string("id"); id != "" && kind == KindDocs {
		stem = path.Join(path.Dir(stem), id)
	}
	if dir, name := path.Split(stem); name == "index" || strings.EqualFold(name, "readme") {
		stem = strings.TrimSuffix(dir, "/")
	}

	item := Item{
		Route:       route(kind, base, stem, fileDate, fm),
		Title:       fm.string("title"),
		Description: fm.string("description"),
		Authors:     fm.authors(authors),
		Published:   fm.time("date"),
		Modified:    fm.modified(),
		Image:       fm.string("image"),
		Keywords:    fm.strings("keywords"),
		Kind:        kind,
		Service:     fm.service(),
		Source:      source,
	}
	if len(item.Keywords) == 0 {
		item.Keywords = fm.strings("tags")
	}
	if item.Published.IsZero() {
		item.Published = fileDate
	}
	if item.Title == "" {
		item.Title = l.fallbackTitle(stem, base)
	}
	return item
}

// fallbackTitle derives a title from the last path segment.
func (l *Loader) fallbackTitle(stem, base string) string {
	name := path.Base(stem)
	if stem == "" {
		name = base
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return l.titler.String(name)
}

// route computes the public route of a file. Blog posts are served under
// /<base>/, date-prefixed posts under /<base>/YYYY/MM/DD/. Docs are served
// under /<base>/ and pages at the site root. A front-matter slug starting with
// "/" is absolute within the section; otherwise it replaces the last segment.
func route(kind Kind, base, stem string, date time.Time, fm frontMatter) string {
	prefix := "/" + base
	if kind == KindPage {
		prefix = "/"
	}
	if kind == KindBlog && !date.IsZero() {
		prefix = path.Join(prefix, date.Format("2006/01/02"))
	}

	if slug := fm.string("slug"); slug != "" {
		if strings.HasPrefix(slug, "/") {
			return cleanRoute(path.Join("/", kindPrefix(kind, base), slug))
		}
		stem = path.Join(path.Dir(stem), slug)
	}

	return cleanRoute(path.Join(prefix, stem))
}

func kindPrefix(kind Kind, base string) string {
	if kind == KindPage {
		return ""
	}
	return base
}

func cleanRoute(r string) string {
	return path.Clean("/" + r)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func joinIfSet(dir, sub string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, sub)
}

// dedupe drops items whose route was already seen, keeping input order.
func dedupe(items []Item, logger *slog.Logger) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item.Route] {
			logger.Warn("Duplicate content route, keeping first", slog.String("route", item.Route), slog.String("source", item.Source))
			continue
		}
		seen[item.Route] = true
		out = append(out, item)
	}
	return out
}
