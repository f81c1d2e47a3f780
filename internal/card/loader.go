package card

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadAgentsCSV reads agent profiles from a CSV export (best-effort).
// Columns are matched by header name; unknown columns are ignored and
// missing ones leave the field empty. Rows without a name are skipped.
func LoadAgentsCSV(path string) ([]AgentCardData, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[normalizeHeader(h)] = i
	}
	if _, ok := cols["full_name"]; !ok {
		return nil, fmt.Errorf("csv %s: missing full_name column", path)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return row[idx]
		}
		return ""
	}

	out := []AgentCardData{}
	for _, row := range rows[1:] {
		d := AgentCardData{
			FullName:  get(row, "full_name"),
			RoleLabel: get(row, "role"),
			Phone:     get(row, "phone"),
			Email:     get(row, "email"),
			Website:   get(row, "website"),
			Address:   get(row, "address"),
			PhotoURL:  get(row, "photo_url"),
		}
		if d.Validate() != nil {
			continue
		}
		out = append(out, d.Normalize())
	}
	return out, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	switch h {
	case "name", "fullname":
		return "full_name"
	case "role_label", "title":
		return "role"
	case "photo", "photourl", "avatar":
		return "photo_url"
	}
	return h
}
