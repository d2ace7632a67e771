package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlantingStatus represents the growth stage of a planting.
type PlantingStatus string

const (
	PlantingStatusPlanned    PlantingStatus = "PLANNED"
	PlantingStatusPlanted    PlantingStatus = "PLANTED"
	PlantingStatusGrowing    PlantingStatus = "GROWING"
	PlantingStatusHarvesting PlantingStatus = "HARVESTING"
	PlantingStatusCompleted  PlantingStatus = "COMPLETED"
	PlantingStatusFailed     PlantingStatus = "FAILED"
)

// ActivePlantingStatuses returns the statuses of plantings currently in the ground.
func ActivePlantingStatuses() []PlantingStatus {
	return []PlantingStatus{
		PlantingStatusPlanted,
		PlantingStatusGrowing,
		PlantingStatusHarvesting,
	}
}

// CultivatedPlantingStatuses returns the statuses whose area counts as cultivated land.
func CultivatedPlantingStatuses() []PlantingStatus {
	return append(ActivePlantingStatuses(), PlantingStatusCompleted)
}

// CropType is the lookup entry naming a crop (e.g. "Maize").
type CropType struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCropType creates a new CropType entity.
func NewCropType(name, category, description string) *CropType {
	now := time.Now().UTC()

	return &CropType{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Planting represents a crop sown on a field.
type Planting struct {
	ID                  uuid.UUID
	CropTypeID          uuid.UUID
	FieldName           string
	Status              PlantingStatus
	AreaPlanted         decimal.Decimal // Hectares
	PlantingDate        time.Time
	ExpectedHarvestDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}

// NewPlanting creates a new Planting entity in the PLANTED status.
func NewPlanting(cropTypeID uuid.UUID, fieldName string, area decimal.Decimal, plantingDate time.Time) *Planting {
	now := time.Now().UTC()

	return &Planting{
		ID:           uuid.New(),
		CropTypeID:   cropTypeID,
		FieldName:    fieldName,
		Status:       PlantingStatusPlanted,
		AreaPlanted:  area,
		PlantingDate: plantingDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Harvest records produce collected from a planting and what it sold for.
type Harvest struct {
	ID          uuid.UUID
	PlantingID  uuid.UUID
	HarvestDate time.Time
	Quantity    decimal.Decimal
	Unit        string
	SoldPrice   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewHarvest creates a new Harvest entity.
func NewHarvest(plantingID uuid.UUID, harvestDate time.Time, quantity decimal.Decimal, unit string, soldPrice decimal.Decimal) *Harvest {
	now := time.Now().UTC()

	return &Harvest{
		ID:          uuid.New(),
		PlantingID:  plantingID,
		HarvestDate: harvestDate,
		Quantity:    quantity,
		Unit:        unit,
		SoldPrice:   soldPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
