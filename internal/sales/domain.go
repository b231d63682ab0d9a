package sales

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sale represents one sales transaction. ID is assigned by the service;
// a candidate record that has not been persisted yet carries an empty ID.
type Sale struct {
	ID      string  `json:"id"`
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
}

// Candidate is a sale as submitted by a caller, before the service has
// assigned an ID.
type Candidate struct {
	Product string  `json:"product"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
}

// SortField selects the column a listing is ordered by.
type SortField string

const (
	SortByProduct SortField = "product"
	SortByAmount  SortField = "amount"
	SortByDate    SortField = "date"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// DateLayout is the calendar date format used throughout the system.
const DateLayout = "2006-01-02"

var (
	ErrInvalidProduct   = errors.New("product must not be empty")
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortDir   = errors.New("invalid sort direction")
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidLimit     = errors.New("limit must be >= 1")
)

// Validate checks a candidate against the domain invariants.
func (c Candidate) Validate() error {
	if strings.TrimSpace(c.Product) == "" {
		return ErrInvalidProduct
	}
	if c.Amount < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidAmount, c.Amount)
	}
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, c.Date)
	}
	return nil
}

// Sale builds the persisted record for a validated candidate.
func (c Candidate) Sale(id string) Sale {
	return Sale{ID: id, Product: c.Product, Amount: c.Amount, Date: c.Date}
}

// ParseSortField validates a sort field string.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByProduct, SortByAmount, SortByDate:
		return SortField(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

// ParseSortDirection validates a sort direction string.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		return SortDirection(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortDir, s)
}

// PageRequest is the tuple of pagination and sort parameters that fully
// determines a list fetch.
type PageRequest struct {
	Page          int
	Limit         int
	SortField     SortField
	SortDirection SortDirection
}

// DefaultPageRequest mirrors the dashboard's initial view: first page of
// ten records, newest first.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page:          1,
		Limit:         10,
		SortField:     SortByDate,
		SortDirection: SortDesc,
	}
}

// Validate checks the request parameters.
func (r PageRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, r.Page)
	}
	if r.Limit < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, r.Limit)
	}
	if _, err := ParseSortField(string(r.SortField)); err != nil {
		return err
	}
	if _, err := ParseSortDirection(string(r.SortDirection)); err != nil {
		return err
	}
	return nil
}

// Page is one page of a listing together with the total number of
// matching records on the service, independent of page size.
type Page struct {
	Data  []Sale `json:"data"`
	Total int    `json:"total"`
}

// TotalPages returns the page count for a given total and page size.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
