// Package repo loads student rosters from CSV files
package repo

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	perr "rollcall/internal/platform/errors"
	"rollcall/internal/platform/logger"
	"rollcall/internal/services/roster/domain"
)

// Identity column headers accepted in roster files, by preference
var identityHeaders = []string{"user_id", "ID"}

// Load reads a roster CSV. The identity column may be named user_id or ID;
// every other column is preserved. A missing file yields ErrorCodeNotFound,
// which callers treat as "no roster configured"
func Load(path string) (*domain.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("roster file %s not found", path)
		}
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "open roster file")
	}
	defer f.Close()

	roster, err := parse(f)
	if err != nil {
		return nil, perr.WithOp(err, "roster.load")
	}
	logger.Named("roster").Info().Str("path", path).Int("students", len(roster.Entries)).
		Msg("student roster loaded")
	return roster, nil
}

func parse(r io.Reader) (*domain.Roster, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "roster header row")
	}

	idCol := -1
	for _, want := range identityHeaders {
		for i, h := range headers {
			if strings.TrimSpace(h) == want {
				idCol = i
				break
			}
		}
		if idCol >= 0 {
			break
		}
	}
	if idCol < 0 {
		return nil, perr.Validationf("roster has no user_id or ID column, headers: %v", headers)
	}

	roster := &domain.Roster{}
	for i, h := range headers {
		if i != idCol {
			roster.Columns = append(roster.Columns, strings.TrimSpace(h))
		}
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeValidation, "roster row")
		}
		entry := domain.Entry{
			UserID: strings.TrimSpace(row[idCol]),
			Fields: make(map[string]string, len(row)-1),
		}
		for i, v := range row {
			if i != idCol {
				entry.Fields[strings.TrimSpace(headers[i])] = v
			}
		}
		roster.Entries = append(roster.Entries, entry)
	}
	return roster, nil
}
