package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/internal/domain/entity"
	"github.com/farm-manager/backend/internal/integration/persistence/model"
)

// demoMonths is the number of months of ledger history the demo farm carries.
const demoMonths = 6

// SeedDemoData inserts a small demo farm. It does nothing when any animal or
// crop type already exists and reports whether rows were written.
func SeedDemoData(ctx context.Context, db *gorm.DB, now time.Time) (bool, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.AnimalModel{}).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check existing animals: %w", err)
	}
	if existing > 0 {
		return false, nil
	}
	if err := db.WithContext(ctx).Model(&model.CropTypeModel{}).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check existing crop types: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	now = now.UTC()
	farm := buildDemoFarm(now)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rows := range farm.rows() {
			if err := tx.CreateInBatches(rows, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed demo data: %w", err)
	}

	slog.InfoContext(ctx, "Demo farm seeded",
		"animals", len(farm.animals),
		"plantings", len(farm.plantings),
		"expenses", len(farm.expenses),
		"income", len(farm.income),
	)
	return true, nil
}

type demoFarm struct {
	animals   []*model.AnimalModel
	cropTypes []*model.CropTypeModel
	plantings []*model.PlantingModel
	harvests  []*model.HarvestModel
	workers   []*model.WorkerModel
	equipment []*model.EquipmentModel
	expenses  []*model.ExpenseModel
	income    []*model.IncomeModel
}

// rows returns the tables parents first.
func (f *demoFarm) rows() []any {
	return []any{f.cropTypes, f.plantings, f.harvests, f.animals, f.workers, f.equipment, f.expenses, f.income}
}

func buildDemoFarm(now time.Time) *demoFarm {
	f := &demoFarm{}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	herd := []struct {
		animalType entity.AnimalType
		breed      string
		count      int
	}{
		{entity.AnimalTypeCattle, "Friesian", 12},
		{entity.AnimalTypeGoat, "Galla", 8},
		{entity.AnimalTypePoultry, "Kienyeji", 40},
		{entity.AnimalTypeSheep, "Dorper", 5},
	}
	for _, h := range herd {
		for i := 1; i <= h.count; i++ {
			a := entity.NewAnimal(fmt.Sprintf("%s-%03d", h.animalType, i), h.animalType, h.breed)
			a.CreatedAt = daysAgo(200 - i)
			a.UpdatedAt = a.CreatedAt
			f.animals = append(f.animals, model.AnimalFromEntity(a))
		}
	}
	sold := entity.NewAnimal("CATTLE-S01", entity.AnimalTypeCattle, "Boran")
	sold.Status = entity.AnimalStatusSold
	sold.CreatedAt = daysAgo(300)
	sold.UpdatedAt = daysAgo(20)
	f.animals = append(f.animals, model.AnimalFromEntity(sold))

	maize := entity.NewCropType("Maize", "Cereal", "Hybrid H614")
	beans := entity.NewCropType("Beans", "Legume", "Rosecoco")
	kale := entity.NewCropType("Kale", "Vegetable", "Sukuma wiki")
	for _, c := range []*entity.CropType{maize, beans, kale} {
		f.cropTypes = append(f.cropTypes, model.CropTypeFromEntity(c))
	}

	fields := []struct {
		crop    *entity.CropType
		field   string
		area    string
		status  entity.PlantingStatus
		planted int
	}{
		{maize, "North field", "4.5", entity.PlantingStatusGrowing, 90},
		{maize, "River plot", "2", entity.PlantingStatusCompleted, 150},
		{beans, "East terrace", "1.5", entity.PlantingStatusHarvesting, 75},
		{kale, "Kitchen garden", "0.25", entity.PlantingStatusPlanted, 10},
		{beans, "South strip", "1", entity.PlantingStatusPlanned, 0},
	}
	plantings := make([]*entity.Planting, len(fields))
	for i, fd := range fields {
		p := entity.NewPlanting(fd.crop.ID, fd.field, decimal.RequireFromString(fd.area), daysAgo(fd.planted))
		p.Status = fd.status
		p.CreatedAt = daysAgo(fd.planted)
		p.UpdatedAt = p.CreatedAt
		plantings[i] = p
		f.plantings = append(f.plantings, model.PlantingFromEntity(p))
	}

	harvests := []*entity.Harvest{
		entity.NewHarvest(plantings[1].ID, daysAgo(now.Day()/2), decimal.NewFromInt(60), "bags", decimal.NewFromInt(210000)),
		entity.NewHarvest(plantings[1].ID, monthStart.AddDate(0, -1, 12), decimal.NewFromInt(40), "bags", decimal.NewFromInt(140000)),
		entity.NewHarvest(plantings[2].ID, daysAgo(3), decimal.NewFromInt(12), "bags", decimal.NewFromInt(66000)),
	}
	for _, h := range harvests {
		f.harvests = append(f.harvests, model.HarvestFromEntity(h))
	}

	crew := []struct{ name, role string }{
		{"Amina Wanjiru", "Farm Manager"},
		{"Joseph Otieno", "Herdsman"},
		{"Grace Mutua", "Field Hand"},
		{"Peter Kamau", "Driver"},
	}
	for _, c := range crew {
		f.workers = append(f.workers, model.WorkerFromEntity(entity.NewWorker(c.name, c.role)))
	}
	seasonal := entity.NewWorker("Daniel Kiptoo", "Seasonal Picker")
	seasonal.Status = entity.WorkerStatusInactive
	f.workers = append(f.workers, model.WorkerFromEntity(seasonal))

	tractor := entity.NewEquipment("Massey Ferguson 375", "Tractor")
	pump := entity.NewEquipment("Irrigation pump", "Pump")
	pump.Status = entity.EquipmentStatusMaintenance
	plough := entity.NewEquipment("Ox plough", "Plough")
	plough.Status = entity.EquipmentStatusRetired
	for _, e := range []*entity.Equipment{tractor, pump, plough} {
		f.equipment = append(f.equipment, model.EquipmentFromEntity(e))
	}

	for m := 0; m < demoMonths; m++ {
		start := monthStart.AddDate(0, -m, 0)
		at := func(day int) time.Time {
			d := start.AddDate(0, 0, day-1)
			if d.After(now) {
				return now
			}
			return d
		}
		scale := decimal.NewFromInt(int64(demoMonths - m))

		expenses := []*entity.Expense{
			entity.NewExpense(entity.ExpenseCategoryFeed, "Dairy meal", decimal.NewFromInt(18000).Add(scale.Mul(decimal.NewFromInt(500))), at(3)),
			entity.NewExpense(entity.ExpenseCategoryLabor, "Monthly wages", decimal.NewFromInt(48000), at(5)),
			entity.NewExpense(entity.ExpenseCategoryFuel, "Diesel for tractor", decimal.NewFromInt(7500), at(9)),
			entity.NewExpense(entity.ExpenseCategoryVeterinary, "Deworming", decimal.NewFromInt(3200), at(14)),
		}
		for _, e := range expenses {
			f.expenses = append(f.expenses, model.ExpenseFromEntity(e))
		}

		income := []*entity.Income{
			entity.NewIncome(entity.IncomeCategoryProductSale, "Milk delivery to cooperative", decimal.NewFromInt(52000).Add(scale.Mul(decimal.NewFromInt(1500))), at(2)),
			entity.NewIncome(entity.IncomeCategoryProductSale, "Eggs", decimal.NewFromInt(9600), at(11)),
		}
		if m%2 == 0 {
			income = append(income,
				entity.NewIncome(entity.IncomeCategoryLivestockSale, "Sold two goat kids", decimal.NewFromInt(14000), at(18)))
		}
		if m == 1 {
			income = append(income,
				entity.NewIncome(entity.IncomeCategoryLivestockSale, "Cattle auction", decimal.NewFromInt(85000), at(20)))
		}
		for _, i := range income {
			f.income = append(f.income, model.IncomeFromEntity(i))
		}
	}

	return f
}
