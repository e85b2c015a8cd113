// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	rowSep   = ";"
	valueSep = ","
)

// ParseRows reads a bracketed matrix literal.
//
// Accepted forms:
//   - "[5,6,7,8]"      → 1×4 row vector
//   - "[1,2;3,4]"      → 2×2 (rows separated by ';')
//   - "5, 6, 7"        → brackets are optional
//
// Every '[' and ']' is discarded before splitting, and surrounding
// whitespace around entries is ignored.
//
// Errors:
//   - ErrInvalidNumber for an empty or non-finite entry.
//   - ErrBadShape for ragged rows.
func ParseRows(s string) (*Dense, error) {
	cleaned := strings.NewReplacer("[", "", "]", "").Replace(strings.TrimSpace(s))
	if strings.TrimSpace(cleaned) == "" {
		return nil, matrixErrorf(opParseRows, ErrBadShape)
	}

	var (
		lines = strings.Split(cleaned, rowSep)
		rows  = make([][]float64, 0, len(lines))
	)
	for i, line := range lines {
		fields := strings.Split(line, valueSep)
		row := make([]float64, len(fields))
		for j, f := range fields {
			f = strings.TrimSpace(f)
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opParseRows, fmt.Errorf("entry (%d,%d) %q: %w", i, j, f, ErrInvalidNumber))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	m, err := NewDenseFrom(rows)
	if err != nil {
		return nil, matrixErrorf(opParseRows, err)
	}

	return m, nil
}
