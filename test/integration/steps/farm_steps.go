package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
	"github.com/farm-manager/backend/internal/integration/persistence"
	"github.com/farm-manager/backend/internal/integration/persistence/model"
)

// registerFarmSteps registers steps that put farm records in the database.
func registerFarmSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the farm has (\d+) "([^"]*)" animals with status "([^"]*)"$`, theFarmHasAnimals)
	ctx.Step(`^a "([^"]*)" planting of "([^"]*)" hectares with status "([^"]*)"$`, aPlanting)
	ctx.Step(`^a harvest of "([^"]*)" from the "([^"]*)" planting sold for "([^"]*)" on "([^"]*)"$`, aHarvest)
	ctx.Step(`^the farm has (\d+) workers with status "([^"]*)"$`, theFarmHasWorkers)
	ctx.Step(`^the farm has (\d+) equipment items with status "([^"]*)"$`, theFarmHasEquipment)
	ctx.Step(`^an expense of "([^"]*)" in category "([^"]*)" described "([^"]*)" dated "([^"]*)"$`, anExpense)
	ctx.Step(`^an income of "([^"]*)" in category "([^"]*)" described "([^"]*)" dated "([^"]*)"$`, anIncome)
	ctx.Step(`^the demo farm is seeded$`, theDemoFarmIsSeeded)
}

func theFarmHasAnimals(ctx context.Context, count int, animalType, status string) error {
	tc := GetTestContext(ctx)
	registered := tc.clock.Now().AddDate(-1, 0, 0)

	rows := make([]*model.AnimalModel, 0, count)
	for i := 0; i < count; i++ {
		tc.tagSeq++
		a := entity.NewAnimal(fmt.Sprintf("TAG-%04d", tc.tagSeq), entity.AnimalType(animalType), "")
		a.Status = entity.AnimalStatus(status)
		a.CreatedAt = registered
		a.UpdatedAt = registered
		rows = append(rows, model.AnimalFromEntity(a))
	}
	return tc.db.DbConn.WithContext(ctx).Create(&rows).Error
}

func aPlanting(ctx context.Context, cropName, area, status string) error {
	tc := GetTestContext(ctx)

	cropTypeID, ok := tc.cropTypes[cropName]
	if !ok {
		cropType := entity.NewCropType(cropName, "", "")
		if err := tc.db.DbConn.WithContext(ctx).Create(model.CropTypeFromEntity(cropType)).Error; err != nil {
			return err
		}
		cropTypeID = cropType.ID
		tc.cropTypes[cropName] = cropTypeID
	}

	hectares, err := decimal.NewFromString(area)
	if err != nil {
		return fmt.Errorf("invalid area %q: %w", area, err)
	}

	planted := tc.clock.Now().AddDate(0, -2, 0)
	p := entity.NewPlanting(cropTypeID, cropName+" field", hectares, planted)
	p.Status = entity.PlantingStatus(status)
	p.CreatedAt = planted
	p.UpdatedAt = planted
	if err := tc.db.DbConn.WithContext(ctx).Create(model.PlantingFromEntity(p)).Error; err != nil {
		return err
	}
	tc.plantings[cropName] = p.ID
	return nil
}

func aHarvest(ctx context.Context, quantity, cropName, soldPrice, date string) error {
	tc := GetTestContext(ctx)

	plantingID, ok := tc.plantings[cropName]
	if !ok {
		return fmt.Errorf("no %s planting recorded", cropName)
	}
	qty, err := decimal.NewFromString(quantity)
	if err != nil {
		return fmt.Errorf("invalid quantity %q: %w", quantity, err)
	}
	price, err := decimal.NewFromString(soldPrice)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", soldPrice, err)
	}
	harvested, err := parseDate(date)
	if err != nil {
		return err
	}

	h := entity.NewHarvest(plantingID, harvested, qty, "kg", price)
	return tc.db.DbConn.WithContext(ctx).Create(model.HarvestFromEntity(h)).Error
}

func theFarmHasWorkers(ctx context.Context, count int, status string) error {
	tc := GetTestContext(ctx)
	rows := make([]*model.WorkerModel, 0, count)
	for i := 0; i < count; i++ {
		w := entity.NewWorker(fmt.Sprintf("Worker %d", i+1), "Field Hand")
		w.Status = entity.WorkerStatus(status)
		rows = append(rows, model.WorkerFromEntity(w))
	}
	return tc.db.DbConn.WithContext(ctx).Create(&rows).Error
}

func theFarmHasEquipment(ctx context.Context, count int, status string) error {
	tc := GetTestContext(ctx)
	rows := make([]*model.EquipmentModel, 0, count)
	for i := 0; i < count; i++ {
		e := entity.NewEquipment(fmt.Sprintf("Machine %d", i+1), "Tractor")
		e.Status = entity.EquipmentStatus(status)
		rows = append(rows, model.EquipmentFromEntity(e))
	}
	return tc.db.DbConn.WithContext(ctx).Create(&rows).Error
}

func anExpense(ctx context.Context, amount, category, description, date string) error {
	value, dated, err := parseEntry(amount, date)
	if err != nil {
		return err
	}
	e := entity.NewExpense(entity.ExpenseCategory(category), description, value, dated)
	return GetTestContext(ctx).db.DbConn.WithContext(ctx).Create(model.ExpenseFromEntity(e)).Error
}

func anIncome(ctx context.Context, amount, category, description, date string) error {
	value, dated, err := parseEntry(amount, date)
	if err != nil {
		return err
	}
	i := entity.NewIncome(entity.IncomeCategory(category), description, value, dated)
	return GetTestContext(ctx).db.DbConn.WithContext(ctx).Create(model.IncomeFromEntity(i)).Error
}

func theDemoFarmIsSeeded(ctx context.Context) error {
	tc := GetTestContext(ctx)
	seeded, err := persistence.SeedDemoData(ctx, tc.db.DbConn, tc.clock.Now())
	if err != nil {
		return err
	}
	if !seeded {
		return fmt.Errorf("demo farm was not seeded into an empty database")
	}
	return nil
}

func parseEntry(amount, date string) (decimal.Decimal, time.Time, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, time.Time{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	dated, err := parseDate(date)
	if err != nil {
		return decimal.Zero, time.Time{}, err
	}
	return value, dated, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
