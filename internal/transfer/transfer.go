// Package transfer converts between the CSV upload/download format and
// candidate sales records. It only reads or produces data; committing
// parsed records is the sync layer's job.
package transfer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"salesdash/internal/sales"
)

// Header is the fixed CSV header line for both import and export.
const Header = "Product,Amount,Date"

const fieldCount = 3

// FormatError reports a malformed import payload. Line is the 1-based
// physical line number in the input, counting the header.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid CSV format: line %d: %s", e.Line, e.Reason)
}

// Parse reads a CSV payload with a Product,Amount,Date header and returns
// the candidate records in input order. The parse is all-or-nothing: any
// invalid row rejects the whole payload with a FormatError naming the line,
// and no partial result is returned. Blank lines are skipped.
func Parse(r io.Reader) ([]sales.Candidate, error) {
	scanner := bufio.NewScanner(r)

	var candidates []sales.Candidate
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			// Header line is discarded without inspection.
			continue
		}
		raw := scanner.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}

		fields := strings.Split(raw, ",")
		if len(fields) != fieldCount {
			return nil, &FormatError{Line: line, Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields))}
		}

		product := strings.TrimSpace(fields[0])
		amountText := strings.TrimSpace(fields[1])
		date := strings.TrimSpace(fields[2])
		if product == "" || amountText == "" || date == "" {
			return nil, &FormatError{Line: line, Reason: "missing required fields"}
		}

		amount, err := decimal.NewFromString(amountText)
		if err != nil {
			return nil, &FormatError{Line: line, Reason: fmt.Sprintf("amount %q is not numeric", amountText)}
		}

		candidates = append(candidates, sales.Candidate{
			Product: product,
			Amount:  amount.InexactFloat64(),
			Date:    date,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read CSV payload: %w", err)
	}
	return candidates, nil
}

// Serialize writes the records as CSV in input order, dropping ids and
// rendering amounts as their raw numeric value. Embedded delimiters are not
// quoted or escaped; a product name containing a comma will corrupt the
// output.
func Serialize(w io.Writer, records []sales.Sale) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range records {
		amount := strconv.FormatFloat(r.Amount, 'f', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", r.Product, amount, r.Date); err != nil {
			return fmt.Errorf("write CSV record: %w", err)
		}
	}
	return bw.Flush()
}
