package payables

import "context"

// Store persists validated payable records.
type Store interface {
	Insert(ctx context.Context, rec PayableRecord) (int64, error)
}

// Service orchestrates the ingestion pipeline for one payable record:
// amount normalization, record validation, then the parameterized insert.
type Service struct {
	store Store
}

// NewService constructs a Service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create runs the pipeline for one inbound request and returns the
// store-assigned identifier. Amount parsing and validation both happen
// before any connection is acquired, so rejected requests never touch the
// pool. Exactly one outcome is produced per call.
func (s *Service) Create(ctx context.Context, req CreatePayableRequest) (int64, error) {
	amount, err := NormalizeAmount(req.Valor)
	if err != nil {
		return 0, err
	}

	rec, err := BuildRecord(amount, req)
	if err != nil {
		return 0, err
	}

	return s.store.Insert(ctx, rec)
}
