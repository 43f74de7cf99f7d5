package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/apibridge/client-go/internal/cliconfig"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// render writes v as JSON when --output json or --query is set, and as a
// table otherwise.
func (a *app) render(v any, table func(w *tabwriter.Writer)) error {
	if a.flags.query != "" {
		return a.renderQuery(v)
	}
	if a.cfg.Output == cliconfig.OutputJSON || table == nil {
		return writeJSON(a.out, v)
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	table(w)
	return w.Flush()
}

// renderQuery applies the --query JSONPath to the JSON form of v. A single
// match is printed on its own; several are printed as an array.
func (a *app) renderQuery(v any) error {
	expr, err := jp.ParseString(a.flags.query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data, err := oj.Parse(raw)
	if err != nil {
		return err
	}

	results := expr.Get(data)
	switch len(results) {
	case 0:
		return nil
	case 1:
		if s, ok := results[0].(string); ok {
			_, err := fmt.Fprintln(a.out, s)
			return err
		}
		return writeJSON(a.out, results[0])
	default:
		return writeJSON(a.out, results)
	}
}

// writeJSON writes indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// row writes one tab-separated table row.
func row(w io.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, "\t"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-3]) + "..."
}
