// Package printer renders the largest entries of a scanned tree as a table
// or as JSON.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/terassyi/kesu/internal/files"
	"github.com/terassyi/kesu/internal/ui"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Entry is one row of a report.
type Entry struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Size        int64   `json:"size"`
	Descendants int     `json:"descendants,omitempty"`
	Share       float64 `json:"share"`
}

// Report is the JSON document printed for a scanned root.
type Report struct {
	Root    string  `json:"root"`
	Size    int64   `json:"size"`
	Entries []Entry `json:"entries"`
	Omitted int     `json:"omitted,omitempty"`
}

// NewReport collects the top entries directly under root, largest first.
// A non-positive top keeps every entry.
func NewReport(root *files.Folder, rootPath string, top int) Report {
	contents := root.Contents()
	shown := contents
	if top > 0 && len(shown) > top {
		shown = shown[:top]
	}

	entries := make([]Entry, 0, len(shown))
	for _, c := range shown {
		e := Entry{
			Name: c.Name(),
			Type: "file",
			Size: c.Size(),
		}
		if f, ok := c.(*files.Folder); ok {
			e.Type = "folder"
			e.Descendants = f.NumDescendants
		}
		if root.Size() > 0 {
			e.Share = float64(c.Size()) / float64(root.Size())
		}
		entries = append(entries, e)
	}

	return Report{
		Root:    rootPath,
		Size:    root.Size(),
		Entries: entries,
		Omitted: len(contents) - len(shown),
	}
}

// Run prints report in the given format.
func Run(w io.Writer, report Report, format string, wide bool) error {
	switch format {
	case FormatJSON:
		return printJSON(w, report)
	case FormatTable:
		printTable(w, report, wide)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// ResolveFormat normalizes user input to a known output format.
func ResolveFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "table", "t":
		return FormatTable, nil
	case "json", "j":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: table, json)", s)
	}
}

// printTable is the table pipeline: header → rows → flush.
func printTable(w io.Writer, report Report, wide bool) {
	if len(report.Entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers(wide), "\t"))
	for _, e := range report.Entries {
		fmt.Fprintln(tw, strings.Join(formatRow(e, wide), "\t"))
	}
	tw.Flush()

	if report.Omitted > 0 {
		fmt.Fprintf(w, "(%d more not shown)\n", report.Omitted)
	}
}

func headers(wide bool) []string {
	if wide {
		return []string{"NAME", "TYPE", "SIZE", "SHARE", "BYTES", "ITEMS"}
	}
	return []string{"NAME", "TYPE", "SIZE", "SHARE"}
}

func formatRow(e Entry, wide bool) []string {
	name := e.Name
	if e.Type == "folder" {
		name += "/"
	}
	cols := []string{
		name,
		e.Type,
		ui.FormatSize(e.Size),
		fmt.Sprintf("%.1f%%", e.Share*100),
	}
	if wide {
		items := "-"
		if e.Type == "folder" {
			items = strconv.Itoa(e.Descendants)
		}
		cols = append(cols, strconv.FormatInt(e.Size, 10), items)
	}
	return cols
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
