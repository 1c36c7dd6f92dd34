package clix

import (
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/stable"
)

// RunStats is one label/value row of the run summary that
// WriteStatsTable renders, the way unikmer's own `info` subcommand
// renders its sketch metadata.
type RunStats struct {
	Label string
	Value string
}

// WriteStatsTable renders rows as a borderless two-column table,
// matching the plain TableStyle used by unikmer/cmd/info.go.
func WriteStatsTable(w io.Writer, rows []RunStats) {
	style := &stable.TableStyle{
		Name:      "plain",
		HeaderRow: stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		DataRow:   stable.RowStyle{Begin: "", Sep: "  ", End: ""},
		Padding:   "",
	}

	columns := []stable.Column{
		{Header: "metric"},
		{Header: "value", Align: stable.AlignRight},
	}

	tbl := stable.New()
	tbl.HeaderWithFormat(columns)
	for _, r := range rows {
		tbl.AddRow([]interface{}{r.Label, r.Value})
	}
	w.Write(tbl.Render(style))
}

// Comma renders n with thousands separators, matching the teacher's use
// of go-humanize for large counts in its own stats tables.
func Comma(n int64) string {
	return humanize.Comma(n)
}
