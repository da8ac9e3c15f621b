package broker

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// table is a parsed CSV with header-name column lookup. Broker exports are
// ragged in practice, so rows shorter than the header are tolerated and short
// cells read as empty.
type table struct {
	header []string
	index  map[string]int // exact header name -> column
	lower  map[string]int // lowercased header name -> column
	rows   [][]string
}

// readTable parses a whole CSV byte stream. A UTF-8 byte-order marker (Kotak
// exports carry one) is stripped before the header is read.
func readTable(data []byte) (*table, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &table{index: map[string]int{}, lower: map[string]int{}}, nil
	}

	t := &table{
		header: records[0],
		index:  make(map[string]int, len(records[0])),
		lower:  make(map[string]int, len(records[0])),
		rows:   records[1:],
	}
	for i, name := range t.header {
		name = strings.TrimSpace(name)
		t.header[i] = name
		t.index[name] = i
		t.lower[strings.ToLower(name)] = i
	}
	return t, nil
}

// missing returns the subset of cols absent from the header, preserving order.
func (t *table) missing(cols ...string) []string {
	var out []string
	for _, c := range cols {
		if _, ok := t.index[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func (t *table) hasLower(names ...string) bool {
	for _, n := range names {
		if _, ok := t.lower[n]; !ok {
			return false
		}
	}
	return true
}

// get returns the trimmed cell value, or "" when the column or cell is absent.
func (t *table) get(row int, col string) string {
	i, ok := t.index[col]
	if !ok {
		return ""
	}
	r := t.rows[row]
	if i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

// cleanNumber coerces a broker-formatted numeric cell to float64. Thousands
// separators and currency markers are stripped first. Malformed cells read as
// zero rather than failing the file.
func cleanNumber(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "₹", "") // rupee sign
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDate tries layouts in order and reports whether any matched.
func parseDate(s string, layouts ...string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if ts, err := time.Parse(l, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// capitalize normalizes a transaction-type cell to Buy/Sell casing.
func capitalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
