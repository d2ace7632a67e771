package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farm-manager/backend/internal/domain/entity"
)

func TestComposeLivestockPerformance(t *testing.T) {
	date := time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC)
	byType := []AnimalTypeCount{
		{Type: entity.AnimalTypeCattle, Count: 12},
		{Type: entity.AnimalTypeGoat, Count: 5},
		{Type: entity.AnimalTypeRabbit, Count: 2},
	}
	income := []*entity.Income{
		entity.NewIncome(entity.IncomeCategoryLivestockSale, "Sold 2 Cattle at market", decimal.NewFromInt(900), date),
		entity.NewIncome(entity.IncomeCategoryLivestockSale, "goat kids", decimal.NewFromInt(150), date),
		entity.NewIncome(entity.IncomeCategoryLivestockSale, "cattle and goat auction lot", decimal.NewFromInt(100), date),
		entity.NewIncome(entity.IncomeCategoryProductSale, "cattle milk", decimal.NewFromInt(70), date),
	}

	performance := ComposeLivestockPerformance(byType, income)

	expected := map[entity.AnimalType]decimal.Decimal{
		entity.AnimalTypeCattle: decimal.NewFromInt(1000),
		entity.AnimalTypeGoat:   decimal.NewFromInt(250),
		entity.AnimalTypeRabbit: decimal.Zero,
	}

	if len(performance) != len(byType) {
		t.Fatalf("expected %d entries, got %d", len(byType), len(performance))
	}
	for i, p := range performance {
		if p.Type != byType[i].Type {
			t.Errorf("entry %d: expected type %s, got %s", i, byType[i].Type, p.Type)
		}
		if p.Count != byType[i].Count {
			t.Errorf("%s: expected count %d, got %d", p.Type, byType[i].Count, p.Count)
		}
		if !p.Revenue.Equal(expected[p.Type]) {
			t.Errorf("%s: expected revenue %s, got %s", p.Type, expected[p.Type], p.Revenue)
		}
	}
}

func TestComposeLivestockPerformance_Empty(t *testing.T) {
	performance := ComposeLivestockPerformance(nil, nil)

	if performance == nil {
		t.Fatal("expected a non-nil slice")
	}
	if len(performance) != 0 {
		t.Errorf("expected no entries, got %d", len(performance))
	}
}

func TestComposeCropPerformance(t *testing.T) {
	maize := uuid.New()
	beans := uuid.New()
	areas := []CropAreaTotal{
		{CropTypeID: maize, CropName: "Maize", Area: decimal.NewFromFloat(2.5)},
		{CropTypeID: beans, CropName: "Beans", Area: decimal.NewFromInt(1)},
	}
	statuses := []PlantingStatusRecord{
		{CropTypeID: maize, Status: entity.PlantingStatusGrowing},
		{CropTypeID: maize, Status: entity.PlantingStatusHarvesting},
		{CropTypeID: maize, Status: entity.PlantingStatusGrowing},
		{CropTypeID: beans, Status: entity.PlantingStatusPlanted},
	}
	harvests := []HarvestRecord{
		{CropTypeID: maize, Quantity: decimal.NewFromInt(50), SoldPrice: decimal.NewFromInt(200)},
		{CropTypeID: maize, Quantity: decimal.NewFromInt(70), SoldPrice: decimal.NewFromInt(300)},
	}

	performance := ComposeCropPerformance(areas, statuses, harvests)

	if len(performance) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(performance))
	}

	tests := []struct {
		name    string
		got     CropPerformance
		crop    string
		area    decimal.Decimal
		yield   decimal.Decimal
		revenue decimal.Decimal
		status  entity.PlantingStatus
	}{
		{
			name:    "harvested crop",
			got:     performance[0],
			crop:    "Maize",
			area:    decimal.NewFromFloat(2.5),
			yield:   decimal.NewFromInt(120),
			revenue: decimal.NewFromInt(500),
			status:  entity.PlantingStatusGrowing,
		},
		{
			name:    "crop without harvests",
			got:     performance[1],
			crop:    "Beans",
			area:    decimal.NewFromInt(1),
			yield:   decimal.Zero,
			revenue: decimal.Zero,
			status:  entity.PlantingStatusPlanted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Crop != tt.crop {
				t.Errorf("expected crop %s, got %s", tt.crop, tt.got.Crop)
			}
			if !tt.got.Area.Equal(tt.area) {
				t.Errorf("expected area %s, got %s", tt.area, tt.got.Area)
			}
			if !tt.got.Yield.Equal(tt.yield) {
				t.Errorf("expected yield %s, got %s", tt.yield, tt.got.Yield)
			}
			if !tt.got.Revenue.Equal(tt.revenue) {
				t.Errorf("expected revenue %s, got %s", tt.revenue, tt.got.Revenue)
			}
			if tt.got.Status != tt.status {
				t.Errorf("expected status %s, got %s", tt.status, tt.got.Status)
			}
		})
	}
}

func TestMostFrequentStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []entity.PlantingStatus
		expected entity.PlantingStatus
	}{
		{
			name:     "empty",
			statuses: nil,
			expected: "",
		},
		{
			name:     "single",
			statuses: []entity.PlantingStatus{entity.PlantingStatusCompleted},
			expected: entity.PlantingStatusCompleted,
		},
		{
			name: "clear majority",
			statuses: []entity.PlantingStatus{
				entity.PlantingStatusPlanted,
				entity.PlantingStatusGrowing,
				entity.PlantingStatusGrowing,
			},
			expected: entity.PlantingStatusGrowing,
		},
		{
			name: "tie goes to first encountered",
			statuses: []entity.PlantingStatus{
				entity.PlantingStatusHarvesting,
				entity.PlantingStatusGrowing,
				entity.PlantingStatusGrowing,
				entity.PlantingStatusHarvesting,
			},
			expected: entity.PlantingStatusHarvesting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostFrequentStatus(tt.statuses); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
