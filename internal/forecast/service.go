package forecast

import (
	"context"
	"time"
)

// Service exposes the forecast record operations the HTTP layer works with.
// It owns the create/update timestamp stamping so no caller can forget it.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts a new record and returns it with its assigned id.
// Client-supplied times are stored in UTC: SQLite keeps timestamps as text,
// and only a uniform offset makes text ordering match chronological ordering.
func (s *Service) Create(ctx context.Context, in WriteInput) (*Forecast, error) {
	now := s.now()
	rec := &Forecast{
		CollectionTime: in.CollectionTime.UTC(),
		ForecastDate:   in.ForecastDate.UTC(),
		TemperatureMin: in.TemperatureMin,
		TemperatureMax: in.TemperatureMax,
		HumidityMin:    in.HumidityMin,
		HumidityMax:    in.HumidityMax,
		Description:    in.Description,
		CreateDate:     now,
		UpdateDate:     now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get fetches a single record by id.
func (s *Service) Get(ctx context.Context, id uint) (*Forecast, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of records. Page numbering starts at 1.
func (s *Service) List(ctx context.Context, page, limit int) ([]Forecast, error) {
	offset := (page - 1) * limit
	return s.repo.List(ctx, offset, limit)
}

// Latest returns all records of the most recent collection batch.
func (s *Service) Latest(ctx context.Context) ([]Forecast, error) {
	return s.repo.Latest(ctx)
}

// Replace overwrites every client-settable field of an existing record.
func (s *Service) Replace(ctx context.Context, id uint, in WriteInput) (*Forecast, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.CollectionTime = in.CollectionTime.UTC()
	rec.ForecastDate = in.ForecastDate.UTC()
	rec.TemperatureMin = in.TemperatureMin
	rec.TemperatureMax = in.TemperatureMax
	rec.HumidityMin = in.HumidityMin
	rec.HumidityMax = in.HumidityMax
	rec.Description = in.Description
	rec.UpdateDate = s.now()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Patch overlays only the supplied fields onto an existing record.
func (s *Service) Patch(ctx context.Context, id uint, in PatchInput) (*Forecast, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(rec)
	rec.UpdateDate = s.now()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// StoreBatch inserts one row per forecast day, all stamped with the given
// collection time. Used by the background collector.
func (s *Service) StoreBatch(ctx context.Context, collectedAt time.Time, days []WriteInput) error {
	now := s.now()
	collectedAt = collectedAt.UTC()
	for _, d := range days {
		rec := &Forecast{
			CollectionTime: collectedAt,
			ForecastDate:   d.ForecastDate.UTC(),
			TemperatureMin: d.TemperatureMin,
			TemperatureMax: d.TemperatureMax,
			HumidityMin:    d.HumidityMin,
			HumidityMax:    d.HumidityMax,
			Description:    d.Description,
			CreateDate:     now,
			UpdateDate:     now,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Ping reports whether the backing database is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
