package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/muesli/clusters"
)

type dataset struct {
	Rows []clusters.Coordinates
	Dim  int
}

func (d dataset) observations() clusters.Observations {
	o := make(clusters.Observations, len(d.Rows))
	for i, row := range d.Rows {
		o[i] = row
	}
	return o
}

// distinct drops repeated rows, keeping first occurrences in order.
func (d dataset) distinct() dataset {
	seen := make(map[string]bool, len(d.Rows))
	out := dataset{Dim: d.Dim, Rows: make([]clusters.Coordinates, 0, len(d.Rows))}
	for _, row := range d.Rows {
		key := formatPoint(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Rows = append(out.Rows, row)
	}
	return out
}

func (d *dataset) add(row clusters.Coordinates, source string) error {
	if d.Dim == 0 {
		d.Dim = len(row)
	} else if len(row) != d.Dim {
		return fmt.Errorf("%s: got %d values, want %d", source, len(row), d.Dim)
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// readDataset reads every path in order; no path or "-" reads stdin.
func readDataset(paths []string, stdin io.Reader) (dataset, error) {
	var d dataset
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		if path == "-" {
			if err := d.read(stdin, "stdin"); err != nil {
				return d, err
			}
			continue
		}
		if err := d.readPath(path); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (d *dataset) readPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return d.readFile(path)
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := d.readFile(filepath.Join(path, file.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (d *dataset) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	slog.Debug("Reading elements", slog.String("path", path))
	return d.read(f, path)
}

func (d *dataset) read(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		row, err := parseLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if row == nil {
			continue
		}
		if err := d.add(row, fmt.Sprintf("%s:%d", name, line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseLine returns nil for blank and comment-only lines.
func parseLine(s string) (clusters.Coordinates, error) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, nil
	}
	row := make(clusters.Coordinates, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %q is not finite", field)
		}
		if v == 0 {
			// -0 and 0 are the same element.
			v = 0
		}
		row[i] = v
	}
	return row, nil
}

// parsePoints parses --predict values; they must match the dataset dimension.
func parsePoints(values []string, dim int) ([]clusters.Coordinates, error) {
	points := make([]clusters.Coordinates, 0, len(values))
	for _, v := range values {
		p, err := parseLine(v)
		if err != nil {
			return nil, fmt.Errorf("predict %q: %w", v, err)
		}
		if len(p) == 0 || len(p) != dim {
			return nil, fmt.Errorf("predict %q: got %d values, want %d", v, len(p), dim)
		}
		points = append(points, p)
	}
	return points, nil
}
