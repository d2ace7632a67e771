// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/internal/application/usecase/report"
	"github.com/farm-manager/backend/internal/domain/entity"
	"github.com/farm-manager/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// CountActiveAnimals returns the number of animals currently on the farm.
func (r *reportRepository) CountActiveAnimals(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AnimalModel{}).
		Where("status = ?", string(entity.AnimalStatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active animals: %w", err)
	}
	return count, nil
}

// CountActiveAnimalsByType returns active headcount per animal type,
// largest herd first.
func (r *reportRepository) CountActiveAnimalsByType(ctx context.Context) ([]report.AnimalTypeCount, error) {
	var results []struct {
		Type  string `gorm:"column:type"`
		Total int64  `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.AnimalModel{}).
		Select("type, COUNT(*) AS total").
		Where("status = ?", string(entity.AnimalStatusActive)).
		Group("type").
		Order("total DESC, type ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count animals by type: %w", err)
	}

	counts := make([]report.AnimalTypeCount, len(results))
	for i, res := range results {
		counts[i] = report.AnimalTypeCount{
			Type:  entity.AnimalType(res.Type),
			Count: res.Total,
		}
	}
	return counts, nil
}

// CountAnimalsAsOf approximates the herd size during [start, end): animals
// registered before end that are still active or changed status within the window.
func (r *reportRepository) CountAnimalsAsOf(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AnimalModel{}).
		Where("created_at < ?", end).
		Where("(status = ? OR (updated_at >= ? AND updated_at < ?))", string(entity.AnimalStatusActive), start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count animals: %w", err)
	}
	return count, nil
}

// CountPlantingsByStatus returns the number of plantings in any of statuses.
func (r *reportRepository) CountPlantingsByStatus(ctx context.Context, statuses []entity.PlantingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PlantingModel{}).
		Where("status IN ?", statusValues(statuses)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count plantings: %w", err)
	}
	return count, nil
}

// CountPlantingsCreated returns the number of plantings recorded within [start, end).
func (r *reportRepository) CountPlantingsCreated(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PlantingModel{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count created plantings: %w", err)
	}
	return count, nil
}

// SumPlantedAreaByCropType returns planted area per crop type for plantings in
// any of statuses, largest area first.
func (r *reportRepository) SumPlantedAreaByCropType(ctx context.Context, statuses []entity.PlantingStatus) ([]report.CropAreaTotal, error) {
	var results []struct {
		CropTypeID uuid.UUID       `gorm:"column:crop_type_id"`
		CropName   string          `gorm:"column:crop_name"`
		Area       decimal.Decimal `gorm:"column:area"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.PlantingModel{}).
		Select("plantings.crop_type_id, crop_types.name AS crop_name, COALESCE(SUM(plantings.area_planted), 0) AS area").
		Joins("JOIN crop_types ON crop_types.id = plantings.crop_type_id").
		Where("plantings.status IN ?", statusValues(statuses)).
		Group("plantings.crop_type_id, crop_types.name").
		Order("area DESC, crop_name ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum planted area: %w", err)
	}

	totals := make([]report.CropAreaTotal, len(results))
	for i, res := range results {
		totals[i] = report.CropAreaTotal{
			CropTypeID: res.CropTypeID,
			CropName:   res.CropName,
			Area:       res.Area,
		}
	}
	return totals, nil
}

// ListPlantingStatuses returns the crop type and status of every planting in
// any of statuses, earliest planting date first. Plantings sharing a date keep
// the order they were recorded in.
func (r *reportRepository) ListPlantingStatuses(ctx context.Context, statuses []entity.PlantingStatus) ([]report.PlantingStatusRecord, error) {
	var results []struct {
		CropTypeID uuid.UUID `gorm:"column:crop_type_id"`
		Status     string    `gorm:"column:status"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.PlantingModel{}).
		Select("crop_type_id, status").
		Where("status IN ?", statusValues(statuses)).
		Order("planting_date ASC, created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list planting statuses: %w", err)
	}

	records := make([]report.PlantingStatusRecord, len(results))
	for i, res := range results {
		records[i] = report.PlantingStatusRecord{
			CropTypeID: res.CropTypeID,
			Status:     entity.PlantingStatus(res.Status),
		}
	}
	return records, nil
}

// ListHarvests returns harvests dated within [start, end) with their crop type.
func (r *reportRepository) ListHarvests(ctx context.Context, start, end time.Time) ([]report.HarvestRecord, error) {
	var results []struct {
		ID          uuid.UUID       `gorm:"column:id"`
		PlantingID  uuid.UUID       `gorm:"column:planting_id"`
		CropTypeID  uuid.UUID       `gorm:"column:crop_type_id"`
		CropName    string          `gorm:"column:crop_name"`
		HarvestDate time.Time       `gorm:"column:harvest_date"`
		Quantity    decimal.Decimal `gorm:"column:quantity"`
		SoldPrice   decimal.Decimal `gorm:"column:sold_price"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.HarvestModel{}).
		Select(`harvests.id, harvests.planting_id, plantings.crop_type_id,
			crop_types.name AS crop_name, harvests.harvest_date,
			harvests.quantity, harvests.sold_price`).
		Joins("JOIN plantings ON plantings.id = harvests.planting_id").
		Joins("JOIN crop_types ON crop_types.id = plantings.crop_type_id").
		Where("harvests.harvest_date >= ? AND harvests.harvest_date < ?", start, end).
		Where("plantings.deleted_at IS NULL").
		Order("harvests.harvest_date DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list harvests: %w", err)
	}

	harvests := make([]report.HarvestRecord, len(results))
	for i, res := range results {
		harvests[i] = report.HarvestRecord{
			ID:          res.ID,
			PlantingID:  res.PlantingID,
			CropTypeID:  res.CropTypeID,
			CropName:    res.CropName,
			HarvestDate: res.HarvestDate,
			Quantity:    res.Quantity,
			SoldPrice:   res.SoldPrice,
		}
	}
	return harvests, nil
}

// CountActiveWorkers returns the number of currently employed workers.
func (r *reportRepository) CountActiveWorkers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WorkerModel{}).
		Where("status = ?", string(entity.WorkerStatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active workers: %w", err)
	}
	return count, nil
}

// CountNonRetiredEquipment returns the number of equipment items not yet retired.
func (r *reportRepository) CountNonRetiredEquipment(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.EquipmentModel{}).
		Where("status <> ?", string(entity.EquipmentStatusRetired)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count equipment: %w", err)
	}
	return count, nil
}

// ListExpenses returns expenses dated within [start, end), newest first.
func (r *reportRepository) ListExpenses(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses, nil
}

// ListIncome returns income dated within [start, end), newest first.
func (r *reportRepository) ListIncome(ctx context.Context, start, end time.Time) ([]*entity.Income, error) {
	var models []model.IncomeModel
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}

	income := make([]*entity.Income, len(models))
	for i := range models {
		income[i] = models[i].ToEntity()
	}
	return income, nil
}

// SumExpenses returns the total of expenses dated within [start, end).
func (r *reportRepository) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	total, err := r.sumAmount(ctx, &model.ExpenseModel{}, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// SumIncome returns the total of income dated within [start, end).
func (r *reportRepository) SumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	total, err := r.sumAmount(ctx, &model.IncomeModel{}, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum income: %w", err)
	}
	return total, nil
}

func (r *reportRepository) sumAmount(ctx context.Context, table any, start, end time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(table).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("date >= ? AND date < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

func statusValues(statuses []entity.PlantingStatus) []string {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}
