package forecast

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no record exists for a given id.
	ErrNotFound = errors.New("forecast record not found")
)

// Repository is the contract the gorm store (and any future persistent store)
// must satisfy.
type Repository interface {
	Create(ctx context.Context, rec *Forecast) error
	GetByID(ctx context.Context, id uint) (*Forecast, error)
	List(ctx context.Context, offset, limit int) ([]Forecast, error)
	Latest(ctx context.Context) ([]Forecast, error)
	Save(ctx context.Context, rec *Forecast) error
	Delete(ctx context.Context, id uint) error
	Ping(ctx context.Context) error
}

type gormRepository struct {
	db *gorm.DB
}

var _ Repository = (*gormRepository)(nil)

// NewRepository creates a Repository backed by the given gorm handle.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, rec *Forecast) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *gormRepository) GetByID(ctx context.Context, id uint) (*Forecast, error) {
	var rec Forecast
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *gormRepository) List(ctx context.Context, offset, limit int) ([]Forecast, error) {
	recs := make([]Forecast, 0, limit)
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Latest returns the rows of the most recent collection batch, ordered by
// forecast date. An empty table yields an empty slice, not an error.
func (r *gormRepository) Latest(ctx context.Context) ([]Forecast, error) {
	recs := make([]Forecast, 0, 8)
	err := r.db.WithContext(ctx).
		Where("collection_time = (?)",
			r.db.Model(&Forecast{}).Select("MAX(collection_time)")).
		Order("forecast_date").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *gormRepository) Save(ctx context.Context, rec *Forecast) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Forecast{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
