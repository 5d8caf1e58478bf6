package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Null values are written as dots, which is the absent-value marker the
// downstream model reader expects.
const nullMarker = "."

// A Row can render itself as one line of an input file.
type Row interface {
	CSVRow() []string
}

func writeCSV(path string, headers []string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		_ = f.Close()
		return err
	}
	for _, r := range rows {
		if err := w.Write(r.CSVRow()); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (e *Exporter) path(fname string) string {
	return filepath.Join(e.out, fname)
}

func fmtString(s *string) string {
	if s == nil {
		return nullMarker
	}
	return *s
}

func fmtFloat(f *float64) string {
	if f == nil {
		return nullMarker
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

func fmtFloat32(f *float32) string {
	if f == nil {
		return nullMarker
	}
	return strconv.FormatFloat(float64(*f), 'g', -1, 32)
}

func fmtInt(i *int64) string {
	if i == nil {
		return nullMarker
	}
	return strconv.FormatInt(*i, 10)
}

func fmtBool(b *bool) string {
	if b == nil {
		return nullMarker
	}
	if *b {
		return "1"
	}
	return "0"
}

func fmtTimestamp(t *time.Time) string {
	if t == nil {
		return nullMarker
	}
	return t.UTC().Format("2006010215")
}
