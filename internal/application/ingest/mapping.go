package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Canonical startup fields produced by the normalizer.
const (
	FieldName       = "startup_name"
	FieldSector     = "sector"
	FieldCity       = "city"
	FieldAddress    = "address"
	FieldAmount     = "amount"
	FieldYear       = "year"
	FieldWebsite    = "website"
	FieldLeadership = "leadership"
	FieldSourceLink = "source_link"
	FieldContact    = "contact"
)

// ColumnMapping maps each canonical field to the header synonyms accepted in
// uploads. Matching is case-insensitive after header normalization; the
// canonical name itself always matches first.
var ColumnMapping = map[string][]string{
	FieldName:       {"startup", "startup_name", "company", "company_name", "name"},
	FieldSector:     {"sector", "industry", "category", "vertical"},
	FieldCity:       {"city", "hq_city", "location_city"},
	FieldAddress:    {"address", "hq_address", "location_address"},
	FieldAmount:     {"amount", "amount_raised", "funding_amount", "raise_amount", "funding"},
	FieldYear:       {"year", "funding_year", "raised_year"},
	FieldWebsite:    {"website", "web", "url", "company_website"},
	FieldLeadership: {"leadership", "founder", "founders", "leadership_team", "leadership_founders"},
	FieldSourceLink: {"sourcelink", "source_link", "source", "article", "citation_link", "reference_link"},
	FieldContact:    {"contact", "contact_details", "email", "phone"},
}

// CanonicalFields in the fixed order used by the startup master export.
// The order is part of the export format; changing it is a format version bump.
var CanonicalFields = []string{
	FieldName, FieldSector, FieldCity, FieldYear, FieldAmount,
	FieldWebsite, FieldLeadership, FieldSourceLink, FieldAddress, FieldContact,
}

var (
	headerFold      = cases.Fold()
	nonAlnumRe      = regexp.MustCompile(`[^a-z0-9]+`)
	underscoreRunRe = regexp.MustCompile(`_+`)
)

// NormalizeHeader reduces an arbitrary spreadsheet header to its canonical
// form: Unicode case folding, non-alphanumeric runs collapsed to a single
// underscore, leading/trailing underscores trimmed.
// "  Amount Raised ($M) " -> "amount_raised_m".
func NormalizeHeader(name string) string {
	s := headerFold.String(strings.TrimSpace(name))
	s = nonAlnumRe.ReplaceAllString(s, "_")
	s = underscoreRunRe.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// normalizeHeaders normalizes every header and disambiguates duplicates with
// a numeric suffix ("city", "city_2", ...). Returns the normalized names in
// column order.
func normalizeHeaders(header []string) []string {
	out := make([]string, len(header))
	seen := map[string]int{}
	for i, h := range header {
		n := NormalizeHeader(h)
		if n == "" {
			n = "column"
		}
		seen[n]++
		if c := seen[n]; c > 1 {
			n = n + "_" + strconv.Itoa(c)
		}
		out[i] = n
	}
	return out
}

// columnIndex resolves which column feeds each canonical field: the canonical
// name itself wins, otherwise the first alias present in the header.
func columnIndex(normHeader []string) map[string]int {
	pos := map[string]int{}
	for i, h := range normHeader {
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}
	idx := map[string]int{}
	for canonical, aliases := range ColumnMapping {
		if i, ok := pos[canonical]; ok {
			idx[canonical] = i
			continue
		}
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				idx[canonical] = i
				break
			}
		}
	}
	return idx
}
