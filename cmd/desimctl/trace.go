package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joeycumines/desim"
)

// traceRow is the JSON/text projection of a TraceEntry, common across
// every example's state type: only the fields the engine itself
// defines (time, process, effect kind) are universal, so that is all
// this prints regardless of how much domain data T carries alongside.
type traceRow struct {
	Time    desim.Time `json:"time"`
	Process uint64     `json:"process"`
	Effect  string     `json:"effect"`
}

func printTrace[T desim.SimState](w io.Writer, format string, entries []desim.TraceEntry[T]) error {
	rows := make([]traceRow, len(entries))
	for i, e := range entries {
		rows[i] = traceRow{
			Time:    e.Event.Time,
			Process: uint64(e.Event.Process),
			Effect:  e.Yielded.Effect().Kind.String(),
		}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	for _, r := range rows {
		fmt.Fprintf(w, "t=%-10.4f proc=%-6d %s\n", r.Time, r.Process, r.Effect)
	}
	return nil
}
