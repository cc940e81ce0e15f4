package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"  Amount Raised ($M) ": "amount_raised_m",
		"Startup Name":          "startup_name",
		"CITY":                  "city",
		"Source-Link":           "source_link",
		"  ":                    "",
		"Funding (INR)":         "funding_inr",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHeader(in), "header %q", in)
	}
}

func TestNormalizeBatch_AliasMapping(t *testing.T) {
	header := []string{"Company", "Industry", "HQ City", "Funding Year", "Amount Raised", "Founders"}
	rows := [][]string{
		{"Chai Point", "Food & Beverage", "Bengaluru", "2019", "2.5 crore", "A. Kumar"},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)

	rec := batch.Records[0]
	assert.Equal(t, "Chai Point", rec.Name)
	assert.Equal(t, "Food & Beverage", rec.Sector)
	assert.Equal(t, "Bengaluru", rec.City)
	require.NotNil(t, rec.Year)
	assert.Equal(t, 2019, *rec.Year)
	require.NotNil(t, rec.Amount)
	assert.True(t, rec.Amount.Equal(decimal.NewFromInt(25_000_000)), "2.5 crore = 25,000,000, got %s", rec.Amount)
	assert.Equal(t, "A. Kumar", rec.Leadership)
}

func TestNormalizeBatch_MissingNameRowRejectedWithReason(t *testing.T) {
	header := []string{"Startup", "City"}
	rows := [][]string{
		{"Alpha", "Pune"},
		{"", "Mumbai"},
		{"Beta", "Delhi"},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)

	assert.Len(t, batch.Records, 2, "rows with a name survive")
	require.Len(t, batch.Rejected, 1)
	assert.Equal(t, 2, batch.Rejected[0].RowNumber, "row numbers are 1-based over data rows")
	assert.Contains(t, batch.Rejected[0].Reason, "name")
	assert.Equal(t, 3, batch.TotalRows)
}

func TestNormalizeBatch_NoNameColumnFails(t *testing.T) {
	_, err := NormalizeBatch([]string{"City", "Amount"}, [][]string{{"Pune", "5 lakh"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalizeBatch_AllRowsRejectedIsEmptyBatch(t *testing.T) {
	_, err := NormalizeBatch([]string{"Startup"}, [][]string{{""}, {"  "}})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestNormalizeBatch_DuplicateNameLastWriteWins(t *testing.T) {
	header := []string{"Startup", "City"}
	rows := [][]string{
		{"Alpha", "Pune"},
		{"Beta", "Delhi"},
		{"Alpha", "Mumbai"},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)

	require.Len(t, batch.Records, 2)
	assert.Equal(t, 1, batch.OverwrittenInBatch)
	// The winner keeps the original position of the first occurrence.
	assert.Equal(t, "Alpha", batch.Records[0].Name)
	assert.Equal(t, "Mumbai", batch.Records[0].City, "the later row's fields win")
	assert.Equal(t, "Beta", batch.Records[1].Name)
}

func TestNormalizeBatch_PreservesRawAttrs(t *testing.T) {
	header := []string{"Startup", "Amount Raised", "Investor Notes"}
	rows := [][]string{
		{"Alpha", "$1.2M", "strong team"},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)

	attrs := batch.Records[0].RawAttrs
	assert.Equal(t, "$1.2M", attrs["amount_raised"], "original amount text survives normalization")
	assert.Equal(t, "strong team", attrs["investor_notes"], "unmapped columns are preserved")
}

func TestNormalizeBatch_ShortRowsArePadded(t *testing.T) {
	header := []string{"Startup", "City", "Contact"}
	rows := [][]string{
		{"Alpha"},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)
	assert.Equal(t, "", batch.Records[0].City)
	assert.Equal(t, "", batch.Records[0].Contact)
}

func TestParseYear(t *testing.T) {
	want := func(n int) *int { return &n }
	cases := []struct {
		in   string
		want *int
	}{
		{"2021", want(2021)},
		{"2021.0", want(2021)},
		{"Series A (2021)", want(2021)},
		{"founded in 1998", want(1998)},
		{"21", nil},
		{"3050", nil},
		{"", nil},
		{"n/a", nil},
	}
	for _, tc := range cases {
		got := parseYear(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
		} else {
			require.NotNil(t, got, "input %q", tc.in)
			assert.Equal(t, *tc.want, *got, "input %q", tc.in)
		}
	}
}

func TestParseAmount(t *testing.T) {
	d := func(s string) *decimal.Decimal {
		v, err := decimal.NewFromString(s)
		require.NoError(t, err)
		return &v
	}
	cases := []struct {
		in   string
		want *decimal.Decimal
	}{
		{"2 crore", d("20000000")},
		{"2.5 Crore", d("25000000")},
		{"5 lakh", d("500000")},
		{"1.5 million", d("1500000")},
		{"3 mn", d("3000000")},
		{"1 bn", d("1000000000")},
		{"2.5m", d("2500000")},
		{"800k", d("800000")},
		{"$1.2M", d("1200000")},
		{"₹2 cr", d("20000000")},
		{"US$ 500k", d("500000")},
		{"1,200,000", d("1200000")},
		{"750000", d("750000")},
		{"", nil},
		{"undisclosed", nil},
		// two amounts in one cell are ambiguous
		{"2 crore (later 5 crore)", nil},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
		} else {
			require.NotNil(t, got, "input %q", tc.in)
			assert.True(t, tc.want.Equal(*got), "input %q: want %s, got %s", tc.in, tc.want, got)
		}
	}
}

// Normalizing an export of already-normalized data must be a fixpoint: the
// canonical headers map to themselves and the values parse back unchanged.
func TestNormalizeBatch_IdempotentOnCanonicalHeader(t *testing.T) {
	header := append([]string(nil), CanonicalFields...)
	rows := [][]string{
		{"Alpha", "Fintech", "Pune", "2020", "25000000", "https://alpha.in", "R. Shah", "", "", ""},
	}

	batch, err := NormalizeBatch(header, rows)
	require.NoError(t, err)
	rec := batch.Records[0]
	assert.Equal(t, "Alpha", rec.Name)
	assert.Equal(t, "Fintech", rec.Sector)
	require.NotNil(t, rec.Year)
	assert.Equal(t, 2020, *rec.Year)
	require.NotNil(t, rec.Amount)
	assert.True(t, rec.Amount.Equal(decimal.NewFromInt(25_000_000)))
}
