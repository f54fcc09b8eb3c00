package convergence

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

// Formats lists the names accepted by Write.
var Formats = []string{"text", "csv", "json"}

// Write renders the report in the named format.
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "text":
		return r.WriteText(w)
	case "csv":
		return r.WriteCSV(w)
	case "json":
		return r.WriteJSON(w)
	}
	return fmt.Errorf("unknown report format %q", format)
}

// WriteText prints an aligned table with one row per resolution and a final
// row holding the observed order of each operator.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "N\t")
	for _, s := range r.Series {
		fmt.Fprintf(tw, "%s\t", s.Operator)
	}
	fmt.Fprintln(tw)
	for k, n := range r.Resolutions {
		fmt.Fprintf(tw, "%d\t", n)
		for _, s := range r.Series {
			if k < len(s.Points) {
				fmt.Fprintf(tw, "%.3e\t", s.Points[k].Error)
			} else {
				fmt.Fprint(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	fmt.Fprint(tw, "order\t")
	for _, s := range r.Series {
		fmt.Fprintf(tw, "%.2f\t", s.Order())
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}

// WriteCSV writes operator,n,error records.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"operator", "n", "error"}); err != nil {
		return err
	}
	for _, s := range r.Series {
		for _, p := range s.Points {
			rec := []string{s.Operator, strconv.Itoa(p.N), strconv.FormatFloat(p.Error, 'g', -1, 64)}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonSeries struct {
	Operator string  `json:"operator"`
	Order    float64 `json:"order"`
	Points   []Point `json:"points"`
}

// WriteJSON writes the report with each series' observed order attached.
// Orders that cannot be estimated are written as 0.
func (r Report) WriteJSON(w io.Writer) error {
	out := struct {
		Resolutions []int        `json:"resolutions"`
		Series      []jsonSeries `json:"series"`
	}{Resolutions: r.Resolutions}
	for _, s := range r.Series {
		order := s.Order()
		if math.IsNaN(order) {
			order = 0
		}
		out.Series = append(out.Series, jsonSeries{Operator: s.Operator, Order: order, Points: s.Points})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
