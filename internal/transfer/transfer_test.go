package transfer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/internal/sales"
)

func TestParse(t *testing.T) {
	input := "Product,Amount,Date\nWidget,10.50,2024-01-01\nGadget,20,2024-01-02\n"

	candidates, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, sales.Candidate{Product: "Widget", Amount: 10.5, Date: "2024-01-01"}, candidates[0])
	assert.Equal(t, sales.Candidate{Product: "Gadget", Amount: 20, Date: "2024-01-02"}, candidates[1])
}

func TestParseTrimsFieldsAndSkipsBlankLines(t *testing.T) {
	input := "Product,Amount,Date\n\n  Widget , 10.50 , 2024-01-01 \n\n"

	candidates, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Widget", candidates[0].Product)
	assert.Equal(t, "2024-01-01", candidates[0].Date)
}

func TestParseRejectsWholePayloadOnBadRow(t *testing.T) {
	input := "Product,Amount,Date\nWidget,10.50,2024-01-01\n,,\nGadget,bad,2024-01-02"

	candidates, err := Parse(strings.NewReader(input))

	assert.Nil(t, candidates, "no partial result on a malformed payload")
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line, "the first malformed line is named")
}

func TestParseRejectsNonNumericAmount(t *testing.T) {
	input := "Product,Amount,Date\nGadget,twenty,2024-01-02\n"

	_, err := Parse(strings.NewReader(input))

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
	assert.Contains(t, formatErr.Error(), "not numeric")
}

func TestParseRejectsWrongFieldCount(t *testing.T) {
	input := "Product,Amount,Date\nWidget,10.50\n"

	_, err := Parse(strings.NewReader(input))

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Error(), "expected 3 fields")
}

func TestParseHeaderOnly(t *testing.T) {
	candidates, err := Parse(strings.NewReader("Product,Amount,Date\n"))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSerialize(t *testing.T) {
	records := []sales.Sale{
		{ID: "id-1", Product: "Widget", Amount: 10.5, Date: "2024-01-01"},
		{ID: "id-2", Product: "Gadget", Amount: 20, Date: "2024-01-02"},
	}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, records))

	assert.Equal(t, "Product,Amount,Date\nWidget,10.5,2024-01-01\nGadget,20,2024-01-02\n", buf.String())
	assert.NotContains(t, buf.String(), "id-1", "ids are dropped from the output")
}

func TestRoundTrip(t *testing.T) {
	records := []sales.Sale{
		{ID: "a", Product: "Widget Pro", Amount: 10.5, Date: "2024-01-01"},
		{ID: "b", Product: "Gadget", Amount: 0, Date: "2024-01-02"},
		{ID: "c", Product: "Gizmo", Amount: 1234.56, Date: "2024-12-31"},
	}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, records))

	candidates, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, candidates, len(records))
	for i, c := range candidates {
		assert.Equal(t, records[i].Product, c.Product)
		assert.Equal(t, records[i].Amount, c.Amount)
		assert.Equal(t, records[i].Date, c.Date)
	}
}
