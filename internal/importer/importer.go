// Package importer turns a LinkedIn-style connections CSV into candidate
// contact rows. Column detection is by sniffing normalized header names, so
// exports from different tools and locales with sensible headers all work.
package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/repsd/internal/model"
)

var (
	ErrEmptyFile    = errors.New("importer: file has no data rows")
	ErrNoNameColumn = errors.New("importer: no name column found")
)

// defaultSelectLimit caps how many rows start out selected so a 5000-row
// export does not import wholesale by accident.
const defaultSelectLimit = 50

// minNameLength filters out junk rows like bare initials.
const minNameLength = 2

// Row is one candidate contact parsed from the CSV.
type Row struct {
	ID          string
	Name        string
	Company     string
	Position    string
	Email       string
	ConnectedOn string // "2006-01-02" or "" when absent/unparseable
	Notes       string
	Warmth      model.Warmth
	Seniority   model.Seniority
	Exists      bool // case-insensitive name match against current contacts
	Selected    bool
}

// Parse reads the CSV and returns candidate rows in file order. Rows whose
// name matches an existing contact are flagged rather than dropped; the first
// fifty new rows come back pre-selected. A file without a usable name column
// is rejected whole.
func Parse(r io.Reader, existing []model.Contact) ([]Row, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, err
	}
	cols := sniffColumns(header)
	if cols.first < 0 && cols.full < 0 {
		return nil, ErrNoNameColumn
	}

	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(strings.TrimSpace(c.Name))] = true
	}

	rows := make([]Row, 0)
	selected := 0
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
		name := extractName(record, cols)
		if len(name) < minNameLength {
			continue
		}
		position := field(record, cols.position)
		row := Row{
			ID:          uuid.NewString(),
			Name:        name,
			Company:     field(record, cols.company),
			Position:    position,
			Email:       field(record, cols.email),
			ConnectedOn: parseConnectedOn(field(record, cols.connected)),
			Warmth:      model.WarmthCold,
			Seniority:   model.InferSeniority(position),
			Exists:      known[strings.ToLower(name)],
		}
		row.Notes = synthesizeNotes(row.Position, row.Company)
		if !row.Exists && selected < defaultSelectLimit {
			row.Selected = true
			selected++
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

type columns struct {
	first, last, full int
	company, position int
	email, connected  int
}

func sniffColumns(header []string) columns {
	cols := columns{first: -1, last: -1, full: -1, company: -1, position: -1, email: -1, connected: -1}
	for i, raw := range header {
		switch normalizeHeader(raw) {
		case "firstname":
			cols.first = i
		case "lastname":
			cols.last = i
		case "name", "fullname":
			cols.full = i
		case "company", "organization", "organisation":
			cols.company = i
		case "position", "title", "jobtitle":
			cols.position = i
		case "email", "emailaddress":
			cols.email = i
		case "connectedon":
			cols.connected = i
		}
	}
	return cols
}

// normalizeHeader lowercases and strips everything but letters, so
// "First Name", "first_name" and "FirstName" all collapse to "firstname".
func normalizeHeader(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractName(record []string, cols columns) string {
	if cols.first >= 0 {
		name := strings.TrimSpace(field(record, cols.first) + " " + field(record, cols.last))
		if name != "" {
			return name
		}
	}
	return field(record, cols.full)
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func synthesizeNotes(position, company string) string {
	switch {
	case position != "" && company != "":
		return position + " at " + company
	case position != "":
		return position
	default:
		return company
	}
}

// connectedOnLayouts covers LinkedIn's "02 Jan 2006" plus the common ISO and
// US short forms.
var connectedOnLayouts = []string{"02 Jan 2006", "2006-01-02", "1/2/2006"}

func parseConnectedOn(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range connectedOnLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(model.DateLayout)
		}
	}
	return ""
}

func stripBOM(r io.Reader) io.Reader {
	return &bomReader{r: r}
}

type bomReader struct {
	r       io.Reader
	started bool
}

func (b *bomReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if !b.started && n >= 3 && p[0] == 0xEF && p[1] == 0xBB && p[2] == 0xBF {
		copy(p, p[3:n])
		n -= 3
	}
	if n > 0 {
		b.started = true
	}
	return n, err
}
