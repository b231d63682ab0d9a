package sales

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// Storage is the interface for the sales storage layer backing the service.
type Storage interface {
	Set(sale Sale) error
	Read(id string) (Sale, error)
	Delete(id string) error
	List(req PageRequest) (Page, error)
	Len() int
}

// LocalStorage provides an in-memory implementation for storing sales.
// Insertion order is preserved so unsorted reads stay deterministic.
type LocalStorage struct {
	mu    sync.RWMutex
	m     map[string]*Sale
	order []string
}

// NewLocalStorage instantiates a new LocalStorage with an empty record set.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Sale{}}
}

// Set inserts or replaces a sale keyed by its ID.
// Returns ErrEmptyID if the sale has an empty ID.
func (l *LocalStorage) Set(sale Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.m[sale.ID]; !exists {
		l.order = append(l.order, sale.ID)
	}
	l.m[sale.ID] = &sale
	return nil
}

// Read retrieves a sale by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) Read(id string) (Sale, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.m[id]
	if !ok {
		return Sale{}, ErrNotFound
	}
	return *s, nil
}

// Delete removes a sale by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored sales.
func (l *LocalStorage) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.m)
}

// List returns one sorted page of sales plus the total record count.
// A page past the end yields empty data with the total untouched.
func (l *LocalStorage) List(req PageRequest) (Page, error) {
	if err := req.Validate(); err != nil {
		return Page{}, err
	}

	l.mu.RLock()
	all := make([]Sale, 0, len(l.order))
	for _, id := range l.order {
		all = append(all, *l.m[id])
	}
	l.mu.RUnlock()

	sortSales(all, req.SortField, req.SortDirection)

	total := len(all)
	start := (req.Page - 1) * req.Limit
	if start >= total {
		return Page{Data: []Sale{}, Total: total}, nil
	}
	end := start + req.Limit
	if end > total {
		end = total
	}
	return Page{Data: all[start:end], Total: total}, nil
}

func sortSales(s []Sale, field SortField, dir SortDirection) {
	less := func(a, b Sale) bool { return a.Date < b.Date }
	switch field {
	case SortByProduct:
		less = func(a, b Sale) bool { return strings.Compare(a.Product, b.Product) < 0 }
	case SortByAmount:
		less = func(a, b Sale) bool { return a.Amount < b.Amount }
	}
	sort.SliceStable(s, func(i, j int) bool {
		if dir == SortDesc {
			return less(s[j], s[i])
		}
		return less(s[i], s[j])
	})
}
