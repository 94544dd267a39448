package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cognicore/lyricpos/pkg/lyricpos/category"
)

const sampleWords = 5

// writeTable prints one category table per album, in registry order.
func writeTable(out io.Writer, reg category.Registry, report Report, albums []string) {
	for _, album := range albums {
		st := report.Albums[album]
		name := album
		if name == "" {
			name = "(no album)"
		}
		fmt.Fprintf(out, "%s: %d tracks, %d words, %d unique\n",
			name, len(st.Tracks), st.TotalWords, st.UniqueWords)

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Category", "Total", "Unique", "Words"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, c := range reg.Categories() {
			b := st.Categories[c]
			words := b.Unique
			if len(words) > sampleWords {
				words = append(words[:sampleWords:sampleWords], "…")
			}
			table.Append([]string{
				string(c),
				strconv.Itoa(b.Total),
				strconv.Itoa(len(b.Unique)),
				strings.Join(words, ", "),
			})
		}
		table.Render()
		fmt.Fprintln(out)
	}
}
