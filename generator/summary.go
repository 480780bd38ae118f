package generator

import (
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/c360studio/structdata/schema"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// renderSummary writes the classification of every content item and the node
// counts per type as tables.
func renderSummary(w io.Writer, result schema.Result) {
	items := table.NewWriter()
	items.SetOutputMirror(w)
	items.AppendHeader(table.Row{"Route", "Title", "Kind", "Schema type"})
	for _, c := range result.Classified {
		typ := string(c.Type)
		if typ == "" {
			typ = "-"
		}
		items.AppendRow(table.Row{c.Item.Route, c.Item.Title, string(c.Item.Kind), typ})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	items.SetStyle(style)
	items.Render()

	counts := result.CountByType()
	types := make([]schemaorg.Type, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	nodes := table.NewWriter()
	nodes.SetOutputMirror(w)
	nodes.AppendHeader(table.Row{"Node type", "Count"})
	for _, t := range types {
		nodes.AppendRow(table.Row{string(t), counts[t]})
	}
	nodes.AppendFooter(table.Row{"Total", len(result.Entries)})
	nodes.SetStyle(style)
	nodes.Render()

	if len(result.Skipped) > 0 {
		names := make([]string, len(result.Skipped))
		for i, s := range result.Skipped {
			names[i] = s.Name
		}
		_, _ = io.WriteString(w, "Skipped base schema sections: "+strings.Join(names, ", ")+"\n")
	}
}
