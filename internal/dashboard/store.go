// Package dashboard owns the client-side record state for the sales
// dashboard: the currently loaded page, pagination and sort parameters, and
// the sync operations that keep them consistent with the remote service.
package dashboard

import (
	"sync"

	"salesdash/internal/sales"
)

// State is a point-in-time snapshot of the record store.
type State struct {
	Records       []sales.Sale
	Loading       bool
	Error         string // empty when the last operation succeeded
	Total         int    // total matching records on the service
	CurrentPage   int
	ItemsPerPage  int
	SortField     sales.SortField
	SortDirection sales.SortDirection
}

// TotalPages derives the page count from the last reported total.
func (s State) TotalPages() int {
	return sales.TotalPages(s.Total, s.ItemsPerPage)
}

// Store is the single writable owner of the loaded record set. All
// mutations are applied atomically under its lock; snapshots never alias
// internal slices.
//
// Each list fetch is tagged with a generation number. Only the result of
// the newest issued fetch may mutate the store, which prevents a slow stale
// response from overwriting fresher data after rapid page or sort changes.
type Store struct {
	mu       sync.RWMutex
	state    State
	fetchGen uint64 // generation of the newest issued list fetch
}

// NewStore creates an empty store with the dashboard's initial view
// parameters (first page of ten records, newest first).
func NewStore() *Store {
	req := sales.DefaultPageRequest()
	return &Store{
		state: State{
			Records:       []sales.Sale{},
			CurrentPage:   req.Page,
			ItemsPerPage:  req.Limit,
			SortField:     req.SortField,
			SortDirection: req.SortDirection,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyStateLocked()
}

func (s *Store) copyStateLocked() State {
	out := s.state
	out.Records = make([]sales.Sale, len(s.state.Records))
	copy(out.Records, s.state.Records)
	return out
}

// PageRequest derives the next list fetch entirely from the current view
// parameters.
func (s *Store) PageRequest() sales.PageRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sales.PageRequest{
		Page:          s.state.CurrentPage,
		Limit:         s.state.ItemsPerPage,
		SortField:     s.state.SortField,
		SortDirection: s.state.SortDirection,
	}
}

// SetCurrentPage moves the view to the given page.
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentPage = page
}

// SetItemsPerPage changes the page size and rewinds to the first page.
func (s *Store) SetItemsPerPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ItemsPerPage = n
	s.state.CurrentPage = 1
}

// SetSort changes the sort order and rewinds to the first page.
func (s *Store) SetSort(field sales.SortField, dir sales.SortDirection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SortField = field
	s.state.SortDirection = dir
	s.state.CurrentPage = 1
}

// beginFetch marks a list fetch as in flight, clears any previous error and
// returns the fetch generation the caller must present when applying the
// result.
func (s *Store) beginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchGen++
	s.state.Loading = true
	s.state.Error = ""
	return s.fetchGen
}

// completeFetch replaces records and total with a successful list result.
// A result from a superseded generation is discarded entirely and false is
// returned.
func (s *Store) completeFetch(gen uint64, page sales.Page) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.fetchGen {
		return false
	}
	records := make([]sales.Sale, len(page.Data))
	copy(records, page.Data)
	s.state.Records = records
	s.state.Total = page.Total
	s.state.Loading = false
	return true
}

// failFetch records a list failure. Prior records and total stay untouched
// so the view keeps showing stale-but-valid data. Stale failures are
// discarded like stale successes.
func (s *Store) failFetch(gen uint64, msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.fetchGen {
		return false
	}
	s.state.Error = msg
	s.state.Loading = false
	return true
}

// applyCreate appends a confirmed new record and bumps the total. The
// append is optimistic about current-page membership; a follow-up fetch
// reconciles placement when it matters.
func (s *Store) applyCreate(sale sales.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Records = append(s.state.Records, sale)
	s.state.Total++
}

// applyUpdate replaces the record with a matching id in place. A record not
// on the current page is a benign no-op; the service remains authoritative.
func (s *Store) applyUpdate(sale sales.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Records {
		if existing.ID == sale.ID {
			s.state.Records[i] = sale
			return
		}
	}
}

// applyDelete removes the record with the given id and decrements the
// total. Only called after the service confirmed the delete, so the total
// can never be decremented twice for one id.
func (s *Store) applyDelete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.state.Records[:0]
	for _, existing := range s.state.Records {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.state.Records = kept
	s.state.Total--
}

// applyBulkCreate appends all confirmed records in service order and grows
// the total by the count created.
func (s *Store) applyBulkCreate(created []sales.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Records = append(s.state.Records, created...)
	s.state.Total += len(created)
}
