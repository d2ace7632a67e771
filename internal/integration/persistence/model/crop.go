package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// CropTypeModel represents the crop_types table in the database.
type CropTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Category    string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the CropTypeModel.
func (CropTypeModel) TableName() string {
	return "crop_types"
}

// ToEntity converts a CropTypeModel to a domain CropType entity.
func (m *CropTypeModel) ToEntity() *entity.CropType {
	return &entity.CropType{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CropTypeFromEntity creates a CropTypeModel from a domain CropType entity.
func CropTypeFromEntity(cropType *entity.CropType) *CropTypeModel {
	return &CropTypeModel{
		ID:          cropType.ID,
		Name:        cropType.Name,
		Category:    cropType.Category,
		Description: cropType.Description,
		CreatedAt:   cropType.CreatedAt,
		UpdatedAt:   cropType.UpdatedAt,
	}
}

// PlantingModel represents the plantings table in the database.
type PlantingModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CropTypeID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	FieldName           string          `gorm:"type:varchar(100)"`
	Status              string          `gorm:"type:varchar(20);not null;index"`
	AreaPlanted         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PlantingDate        time.Time       `gorm:"type:date;not null"`
	ExpectedHarvestDate *time.Time      `gorm:"type:date"`
	CreatedAt           time.Time       `gorm:"not null;index"`
	UpdatedAt           time.Time       `gorm:"not null"`
	DeletedAt           gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	CropType *CropTypeModel `gorm:"foreignKey:CropTypeID;references:ID"`
}

// TableName returns the table name for the PlantingModel.
func (PlantingModel) TableName() string {
	return "plantings"
}

// ToEntity converts a PlantingModel to a domain Planting entity.
func (m *PlantingModel) ToEntity() *entity.Planting {
	return &entity.Planting{
		ID:                  m.ID,
		CropTypeID:          m.CropTypeID,
		FieldName:           m.FieldName,
		Status:              entity.PlantingStatus(m.Status),
		AreaPlanted:         m.AreaPlanted,
		PlantingDate:        m.PlantingDate,
		ExpectedHarvestDate: m.ExpectedHarvestDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           deletedAtPtr(m.DeletedAt),
	}
}

// PlantingFromEntity creates a PlantingModel from a domain Planting entity.
func PlantingFromEntity(planting *entity.Planting) *PlantingModel {
	return &PlantingModel{
		ID:                  planting.ID,
		CropTypeID:          planting.CropTypeID,
		FieldName:           planting.FieldName,
		Status:              string(planting.Status),
		AreaPlanted:         planting.AreaPlanted,
		PlantingDate:        planting.PlantingDate,
		ExpectedHarvestDate: planting.ExpectedHarvestDate,
		CreatedAt:           planting.CreatedAt,
		UpdatedAt:           planting.UpdatedAt,
		DeletedAt:           deletedAtFrom(planting.DeletedAt),
	}
}

// HarvestModel represents the harvests table in the database.
type HarvestModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlantingID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	HarvestDate time.Time       `gorm:"type:date;not null;index"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit        string          `gorm:"type:varchar(20)"`
	SoldPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Planting *PlantingModel `gorm:"foreignKey:PlantingID;references:ID"`
}

// TableName returns the table name for the HarvestModel.
func (HarvestModel) TableName() string {
	return "harvests"
}

// ToEntity converts a HarvestModel to a domain Harvest entity.
func (m *HarvestModel) ToEntity() *entity.Harvest {
	return &entity.Harvest{
		ID:          m.ID,
		PlantingID:  m.PlantingID,
		HarvestDate: m.HarvestDate,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		SoldPrice:   m.SoldPrice,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HarvestFromEntity creates a HarvestModel from a domain Harvest entity.
func HarvestFromEntity(harvest *entity.Harvest) *HarvestModel {
	return &HarvestModel{
		ID:          harvest.ID,
		PlantingID:  harvest.PlantingID,
		HarvestDate: harvest.HarvestDate,
		Quantity:    harvest.Quantity,
		Unit:        harvest.Unit,
		SoldPrice:   harvest.SoldPrice,
		CreatedAt:   harvest.CreatedAt,
		UpdatedAt:   harvest.UpdatedAt,
	}
}
