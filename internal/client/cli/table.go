package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// printTable writes headers and rows as aligned columns.
func printTable(w io.Writer, headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	_ = tw.Flush()
}

func printPagination(w io.Writer, p models.Pagination) {
	if p.TotalPages == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	hint := ""
	if p.HasPreviousPage {
		hint += " [prev]"
	}
	if p.HasNextPage {
		hint += " [next]"
	}
	fmt.Fprintf(w, "Page %d of %d, %d items.%s\n", p.CurrentPage, p.TotalPages, p.TotalItems, hint)
}

func itoa(n int) string { return strconv.Itoa(n) }

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
