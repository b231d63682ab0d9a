package sales

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service provides the sales operations exposed by the HTTP API on top of a
// Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// List returns one page of sales in the requested order together with the
// total number of stored records.
func (s *Service) List(req PageRequest) (Page, error) {
	page, err := s.storage.List(req)
	if err != nil {
		s.logger.Warn("rejected list request",
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.String("sort_field", string(req.SortField)),
			zap.String("sort_direction", string(req.SortDirection)),
			zap.Error(err))
		return Page{}, err
	}
	return page, nil
}

// Create validates a candidate, assigns it an ID and stores it.
func (s *Service) Create(c Candidate) (Sale, error) {
	if err := c.Validate(); err != nil {
		return Sale{}, err
	}

	sale := c.Sale(uuid.NewString())
	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to save sale", zap.String("sale_id", sale.ID), zap.Error(err))
		return Sale{}, fmt.Errorf("failed to save sale: %w", err)
	}

	s.logger.Info("sale created",
		zap.String("sale_id", sale.ID),
		zap.String("product", sale.Product),
		zap.Float64("amount", sale.Amount))
	return sale, nil
}

// Update replaces the fields of an existing sale. The ID is immutable;
// ErrNotFound is returned when no sale with that ID exists.
func (s *Service) Update(id string, c Candidate) (Sale, error) {
	if err := c.Validate(); err != nil {
		return Sale{}, err
	}
	if _, err := s.storage.Read(id); err != nil {
		return Sale{}, err
	}

	sale := c.Sale(id)
	if err := s.storage.Set(sale); err != nil {
		s.logger.Error("failed to update sale", zap.String("sale_id", id), zap.Error(err))
		return Sale{}, fmt.Errorf("failed to update sale: %w", err)
	}

	s.logger.Info("sale updated", zap.String("sale_id", id))
	return sale, nil
}

// Delete removes a sale by ID. ErrNotFound is returned when absent, so a
// repeated delete of the same ID fails rather than double-counting.
func (s *Service) Delete(id string) error {
	if err := s.storage.Delete(id); err != nil {
		return err
	}
	s.logger.Info("sale deleted", zap.String("sale_id", id))
	return nil
}

// BulkCreate stores a batch of candidates. The batch is all-or-nothing: any
// invalid candidate rejects the whole request before anything is stored.
func (s *Service) BulkCreate(candidates []Candidate) ([]Sale, error) {
	for i, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	created := make([]Sale, 0, len(candidates))
	for _, c := range candidates {
		sale := c.Sale(uuid.NewString())
		if err := s.storage.Set(sale); err != nil {
			s.logger.Error("failed to save sale in bulk", zap.String("sale_id", sale.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to save sale: %w", err)
		}
		created = append(created, sale)
	}

	s.logger.Info("bulk create completed",
		zap.Int("count", len(created)),
		zap.Int("stored", s.storage.Len()))
	return created, nil
}
