package dashboard

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"salesdash/internal/sales"
	"salesdash/internal/transfer"
)

// ErrStaleResponse reports that a list result arrived after a newer fetch
// had been issued and was discarded without touching the store.
var ErrStaleResponse = errors.New("stale list response discarded")

// allRecordsLimit is the page size used to pull the full record set for
// analytics and export.
const allRecordsLimit = 100000

// API is the remote sales service surface the sync operations need.
// *client.Client satisfies it.
type API interface {
	ListSales(ctx context.Context, req sales.PageRequest) (sales.Page, error)
	CreateSale(ctx context.Context, candidate sales.Candidate) (sales.Sale, error)
	UpdateSale(ctx context.Context, id string, candidate sales.Candidate) (sales.Sale, error)
	DeleteSale(ctx context.Context, id string) (string, error)
	BulkCreateSales(ctx context.Context, candidates []sales.Candidate) ([]sales.Sale, error)
}

// Service translates dashboard intents into remote calls and folds the
// results back into the record store. Operations are not serialized against
// each other; the store applies each completed result atomically and the
// fetch generation decides which list result wins.
type Service struct {
	api    API
	store  *Store
	logger *zap.Logger
}

// NewService creates a sync service over the given API and store.
func NewService(api API, store *Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Store exposes the record store for snapshots.
func (s *Service) Store() *Store {
	return s.store
}

// FetchPage lists the page described by the store's current view parameters
// and replaces the loaded records and total with the result. On failure the
// prior records stay visible and the error is recorded on the store as well
// as returned. A result superseded by a newer fetch is discarded and
// ErrStaleResponse is returned.
func (s *Service) FetchPage(ctx context.Context) error {
	req := s.store.PageRequest()
	gen := s.store.beginFetch()

	page, err := s.api.ListSales(ctx, req)
	if err != nil {
		if !s.store.failFetch(gen, err.Error()) {
			s.logger.Debug("stale list failure discarded", zap.Uint64("generation", gen))
			return ErrStaleResponse
		}
		s.logger.Error("failed to fetch sales page",
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.Error(err))
		return err
	}

	if !s.store.completeFetch(gen, page) {
		s.logger.Debug("stale list response discarded", zap.Uint64("generation", gen))
		return ErrStaleResponse
	}
	s.logger.Debug("fetched sales page",
		zap.Int("page", req.Page),
		zap.Int("count", len(page.Data)),
		zap.Int("total", page.Total))
	return nil
}

// ChangePage moves the view to the given page and refetches.
func (s *Service) ChangePage(ctx context.Context, page int) error {
	s.store.SetCurrentPage(page)
	return s.FetchPage(ctx)
}

// ChangeSort changes the sort order, rewinds to the first page and
// refetches.
func (s *Service) ChangeSort(ctx context.Context, field sales.SortField, dir sales.SortDirection) error {
	s.store.SetSort(field, dir)
	return s.FetchPage(ctx)
}

// ChangeItemsPerPage changes the page size, rewinds to the first page and
// refetches.
func (s *Service) ChangeItemsPerPage(ctx context.Context, n int) error {
	s.store.SetItemsPerPage(n)
	return s.FetchPage(ctx)
}

// Create persists a candidate. After service confirmation the created
// record is appended locally and the total bumped; on failure the store is
// unchanged and the error is returned to the initiating caller.
func (s *Service) Create(ctx context.Context, candidate sales.Candidate) (sales.Sale, error) {
	created, err := s.api.CreateSale(ctx, candidate)
	if err != nil {
		s.logger.Error("failed to create sale", zap.Error(err))
		return sales.Sale{}, err
	}
	s.store.applyCreate(created)
	s.logger.Info("sale created", zap.String("sale_id", created.ID))
	return created, nil
}

// Update replaces a record's fields on the service, then patches the local
// copy in place when it is on the current page.
func (s *Service) Update(ctx context.Context, id string, candidate sales.Candidate) (sales.Sale, error) {
	updated, err := s.api.UpdateSale(ctx, id, candidate)
	if err != nil {
		s.logger.Error("failed to update sale", zap.String("sale_id", id), zap.Error(err))
		return sales.Sale{}, err
	}
	s.store.applyUpdate(updated)
	s.logger.Info("sale updated", zap.String("sale_id", id))
	return updated, nil
}

// Delete removes a record on the service, then drops the local copy and
// decrements the total.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteSale(ctx, id); err != nil {
		s.logger.Error("failed to delete sale", zap.String("sale_id", id), zap.Error(err))
		return err
	}
	s.store.applyDelete(id)
	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return nil
}

// BulkCreate persists a batch of candidates as one all-or-nothing request
// and appends the confirmed records in service order.
func (s *Service) BulkCreate(ctx context.Context, candidates []sales.Candidate) ([]sales.Sale, error) {
	created, err := s.api.BulkCreateSales(ctx, candidates)
	if err != nil {
		s.logger.Error("failed to bulk create sales", zap.Int("count", len(candidates)), zap.Error(err))
		return nil, err
	}
	s.store.applyBulkCreate(created)
	s.logger.Info("bulk create applied", zap.Int("count", len(created)))
	return created, nil
}

// FetchAll pulls every record, newest first, without touching the paginated
// view. Analytics and export derive from this full set rather than the
// current page window.
func (s *Service) FetchAll(ctx context.Context) ([]sales.Sale, error) {
	page, err := s.api.ListSales(ctx, sales.PageRequest{
		Page:          1,
		Limit:         allRecordsLimit,
		SortField:     sales.SortByDate,
		SortDirection: sales.SortDesc,
	})
	if err != nil {
		s.logger.Error("failed to fetch all sales", zap.Error(err))
		return nil, err
	}
	return page.Data, nil
}

// latestSalesCount is how many recent records the latest-sales panel
// shows.
const latestSalesCount = 10

// Analytics is the derived dashboard statistics: aggregate summary plus
// the most recent sales for the latest-sales panel.
type Analytics struct {
	Summary sales.Summary
	Latest  []sales.Sale
}

// Analytics computes summary statistics and the latest sales over the full
// record set. FetchAll returns records newest first, so the head of the
// set is the latest-sales panel.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	records, err := s.FetchAll(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{
		Summary: sales.Summarize(records),
		Latest:  sales.Latest(records, latestSalesCount),
	}, nil
}

// ImportCSV parses an uploaded CSV payload and bulk-creates the records.
// A malformed payload aborts before any network or store activity.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) ([]sales.Sale, error) {
	candidates, err := transfer.Parse(r)
	if err != nil {
		return nil, err
	}
	return s.BulkCreate(ctx, candidates)
}

// ExportCSV fetches the full record set and serializes it as CSV.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.FetchAll(ctx)
	if err != nil {
		return err
	}
	return transfer.Serialize(w, records)
}
