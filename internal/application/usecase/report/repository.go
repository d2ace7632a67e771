package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// ReportRepository defines the read-only aggregate queries the report needs.
// Every date-bounded method treats [start, end) as a half-open interval.
type ReportRepository interface {
	// CountActiveAnimals returns the number of animals with status ACTIVE.
	CountActiveAnimals(ctx context.Context) (int64, error)

	// CountActiveAnimalsByType returns active animal counts grouped by type,
	// ordered by count descending then type.
	CountActiveAnimalsByType(ctx context.Context) ([]AnimalTypeCount, error)

	// CountAnimalsAsOf approximates the herd size for a month: animals created
	// before end that are ACTIVE or were updated within [start, end).
	CountAnimalsAsOf(ctx context.Context, start, end time.Time) (int64, error)

	// CountPlantingsByStatus returns the number of plantings in any of statuses.
	CountPlantingsByStatus(ctx context.Context, statuses []entity.PlantingStatus) (int64, error)

	// CountPlantingsCreated returns the number of plantings created within [start, end).
	CountPlantingsCreated(ctx context.Context, start, end time.Time) (int64, error)

	// SumPlantedAreaByCropType returns planted area per crop type for plantings
	// in any of statuses, ordered by area descending then crop name.
	SumPlantedAreaByCropType(ctx context.Context, statuses []entity.PlantingStatus) ([]CropAreaTotal, error)

	// ListPlantingStatuses returns the crop type and status of every planting in
	// any of statuses, ordered by planting date then creation time. The order
	// decides crop status ties.
	ListPlantingStatuses(ctx context.Context, statuses []entity.PlantingStatus) ([]PlantingStatusRecord, error)

	// ListHarvests returns harvests dated within [start, end) joined to their crop type.
	ListHarvests(ctx context.Context, start, end time.Time) ([]HarvestRecord, error)

	// CountActiveWorkers returns the number of workers with status ACTIVE.
	CountActiveWorkers(ctx context.Context) (int64, error)

	// CountNonRetiredEquipment returns the number of equipment items not RETIRED.
	CountNonRetiredEquipment(ctx context.Context) (int64, error)

	// ListExpenses returns expenses dated within [start, end), newest first.
	ListExpenses(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)

	// ListIncome returns income records dated within [start, end), newest first.
	ListIncome(ctx context.Context, start, end time.Time) ([]*entity.Income, error)

	// SumExpenses returns the total expense amount within [start, end).
	SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumIncome returns the total income amount within [start, end).
	SumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

// AnimalTypeCount is the number of active animals of one type.
type AnimalTypeCount struct {
	Type  entity.AnimalType
	Count int64
}

// CropAreaTotal is the planted area of one crop type.
type CropAreaTotal struct {
	CropTypeID uuid.UUID
	CropName   string
	Area       decimal.Decimal
}

// PlantingStatusRecord pairs a planting's crop type with its status.
type PlantingStatusRecord struct {
	CropTypeID uuid.UUID
	Status     entity.PlantingStatus
}

// HarvestRecord is a harvest joined to its planting's crop type.
type HarvestRecord struct {
	ID          uuid.UUID
	PlantingID  uuid.UUID
	CropTypeID  uuid.UUID
	CropName    string
	HarvestDate time.Time
	Quantity    decimal.Decimal
	SoldPrice   decimal.Decimal
}
