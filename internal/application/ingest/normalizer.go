package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
)

// Batch is the outcome of normalizing one upload: the accepted records in
// source order, the rejected rows with reasons, and how many accepted rows
// overwrote an earlier row of the same batch (duplicate name, last-write-wins).
type Batch struct {
	Records            []*entity.Startup
	Rejected           []dto.RejectedRow
	OverwrittenInBatch int
	TotalRows          int
}

// NormalizeBatch maps a raw tabular upload (arbitrary column headers and
// order) to canonical startup records.
//
// Policy, fixed and deterministic:
//   - headers are matched case-insensitively against ColumnMapping;
//   - a row without a usable name is rejected with a reason, never dropped
//     silently, and the rest of the batch continues;
//   - when two rows share a name, the later row wins and the collision is
//     counted as overwritten;
//   - every source cell is preserved in RawAttrs under its normalized header.
//
// Returns domain.ErrInvalidInput when the header itself has no recognizable
// name column, and domain.ErrEmptyBatch when no row survives.
func NormalizeBatch(header []string, rows [][]string) (*Batch, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: upload has no header row", domain.ErrInvalidInput)
	}

	normHeader := normalizeHeaders(header)
	idx := columnIndex(normHeader)
	if _, ok := idx[FieldName]; !ok {
		return nil, fmt.Errorf("%w: missing required column %q (or a synonym: %s)",
			domain.ErrInvalidInput, "Startup", strings.Join(ColumnMapping[FieldName], ", "))
	}

	batch := &Batch{TotalRows: len(rows)}
	byName := map[string]int{} // name -> position in batch.Records

	for rowNo, row := range rows {
		name := cleanString(cell(row, idx, FieldName))
		if name == "" {
			batch.Rejected = append(batch.Rejected, dto.RejectedRow{
				RowNumber: rowNo + 1,
				Reason:    "missing required field: name",
			})
			continue
		}

		rec := &entity.Startup{
			Name:       name,
			Sector:     cleanString(cell(row, idx, FieldSector)),
			City:       cleanString(cell(row, idx, FieldCity)),
			Year:       parseYear(cell(row, idx, FieldYear)),
			Amount:     ParseAmount(cell(row, idx, FieldAmount)),
			Website:    cleanString(cell(row, idx, FieldWebsite)),
			Leadership: cleanString(cell(row, idx, FieldLeadership)),
			SourceLink: cleanString(cell(row, idx, FieldSourceLink)),
			Address:    cleanString(cell(row, idx, FieldAddress)),
			Contact:    cleanString(cell(row, idx, FieldContact)),
			RawAttrs:   rawAttrs(normHeader, row),
		}

		if prev, dup := byName[name]; dup {
			batch.Records[prev] = rec
			batch.OverwrittenInBatch++
			continue
		}
		byName[name] = len(batch.Records)
		batch.Records = append(batch.Records, rec)
	}

	if len(batch.Records) == 0 {
		return nil, fmt.Errorf("%w: %d row(s) rejected", domain.ErrEmptyBatch, len(batch.Rejected))
	}
	return batch, nil
}

func cell(row []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func rawAttrs(normHeader, row []string) map[string]string {
	attrs := make(map[string]string, len(normHeader))
	for i, h := range normHeader {
		var v string
		if i < len(row) {
			v = strings.TrimSpace(row[i])
		}
		if v == "" {
			continue
		}
		attrs[h] = v
	}
	return attrs
}

func cleanString(s string) string {
	return strings.TrimSpace(s)
}

var yearRe = regexp.MustCompile(`(19|20)\d{2}`)

// parseYear extracts a 4-digit year from the cell. Plain integers are taken
// as-is; free text like "Series A (2021)" falls back to the first
// 19xx/20xx match.
func parseYear(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1900 && n <= 2099 {
			return &n
		}
		return nil
	}
	// Excel sometimes hands years over as floats ("2021.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		if float64(n) == f && n >= 1900 && n <= 2099 {
			return &n
		}
	}
	if m := yearRe.FindString(s); m != "" {
		n, _ := strconv.Atoi(m)
		return &n
	}
	return nil
}

// Funding amount scale words. Indian units first: the source sheets mix
// "2.5 crore" with "$1.2M".
var amountScales = map[string]int64{
	"crore": 1e7, "cr": 1e7,
	"lakh": 1e5, "lac": 1e5,
	"million": 1e6, "mn": 1e6, "mil": 1e6,
	"billion": 1e9, "bn": 1e9,
	"thousand": 1e3, "k": 1e3,
}

var (
	amountWordRe   = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(crore|cr|lakh|lac|million|mn|mil|billion|bn|thousand|k)\b`)
	amountSuffixRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)(k|m|b)\b`)
	amountPlainRe  = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

// ParseAmount normalizes a funding-amount cell to plain units.
// Handles scale words ("2 crore", "5 lakh", "1.5 million"), compact suffixes
// ("2.5m", "800k"), and bare numbers with currency symbols or thousands
// separators. Cells with more than one amount are ambiguous and yield nil
// rather than a guess.
func ParseAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	text := strings.ToLower(s)
	text = strings.NewReplacer(",", "", "us$", "", "$", "", "₹", " ").Replace(text)
	text = strings.Join(strings.Fields(text), " ")

	if m := amountWordRe.FindAllStringSubmatch(text, -1); len(m) == 1 {
		return scaled(m[0][1], amountScales[m[0][2]])
	} else if len(m) > 1 {
		return nil
	}

	if m := amountSuffixRe.FindAllStringSubmatch(text, -1); len(m) == 1 {
		scale := map[string]int64{"k": 1e3, "m": 1e6, "b": 1e9}[m[0][2]]
		return scaled(m[0][1], scale)
	} else if len(m) > 1 {
		return nil
	}

	if m := amountPlainRe.FindString(text); m != "" {
		d, err := decimal.NewFromString(m)
		if err != nil {
			return nil
		}
		return &d
	}
	return nil
}

func scaled(number string, scale int64) *decimal.Decimal {
	d, err := decimal.NewFromString(number)
	if err != nil {
		return nil
	}
	d = d.Mul(decimal.NewFromInt(scale))
	return &d
}
