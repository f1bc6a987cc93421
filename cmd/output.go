package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/clusters"
)

type group struct {
	Head    []float64   `json:"head"`
	Members [][]float64 `json:"members"`
}

type prediction struct {
	Point   clusters.Coordinates `json:"point"`
	Cluster int                  `json:"cluster"`
}

type report struct {
	Clusters    []group      `json:"clusters"`
	Predictions []prediction `json:"predictions,omitempty"`
}

func newReport(cc clusters.Clusters) report {
	r := report{Clusters: make([]group, len(cc))}
	for i, c := range cc {
		r.Clusters[i] = group{Head: c.Center, Members: make([][]float64, len(c.Observations))}
		for n, o := range c.Observations {
			r.Clusters[i].Members[n] = o.Coordinates()
		}
	}
	return r
}

func (r report) write(w io.Writer, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	var b strings.Builder
	for i, g := range r.Clusters {
		fmt.Fprintf(&b, "cluster %d head %s members %d\n", i, formatPoint(g.Head), len(g.Members))
		for _, m := range g.Members {
			fmt.Fprintf(&b, "  %s\n", formatPoint(m))
		}
	}
	for _, p := range r.Predictions {
		fmt.Fprintf(&b, "predict %s cluster %d\n", formatPoint(p.Point), p.Cluster)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatPoint(p []float64) string {
	s := make([]string, len(p))
	for i, v := range p {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, ",")
}
