// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// AnimalModel represents the animals table in the database.
type AnimalModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TagNumber string         `gorm:"type:varchar(50);not null;index"`
	Type      string         `gorm:"type:varchar(20);not null;index"`
	Breed     string         `gorm:"type:varchar(100)"`
	Status    string         `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the AnimalModel.
func (AnimalModel) TableName() string {
	return "animals"
}

// ToEntity converts an AnimalModel to a domain Animal entity.
func (m *AnimalModel) ToEntity() *entity.Animal {
	return &entity.Animal{
		ID:        m.ID,
		TagNumber: m.TagNumber,
		Type:      entity.AnimalType(m.Type),
		Breed:     m.Breed,
		Status:    entity.AnimalStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAtPtr(m.DeletedAt),
	}
}

// AnimalFromEntity creates an AnimalModel from a domain Animal entity.
func AnimalFromEntity(animal *entity.Animal) *AnimalModel {
	return &AnimalModel{
		ID:        animal.ID,
		TagNumber: animal.TagNumber,
		Type:      string(animal.Type),
		Breed:     animal.Breed,
		Status:    string(animal.Status),
		CreatedAt: animal.CreatedAt,
		UpdatedAt: animal.UpdatedAt,
		DeletedAt: deletedAtFrom(animal.DeletedAt),
	}
}

func deletedAtPtr(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}

func deletedAtFrom(t *time.Time) gorm.DeletedAt {
	if t != nil {
		return gorm.DeletedAt{Time: *t, Valid: true}
	}
	return gorm.DeletedAt{}
}

// AllModels returns every model managed by AutoMigrate, parents before children.
func AllModels() []any {
	return []any{
		&AnimalModel{},
		&CropTypeModel{},
		&PlantingModel{},
		&HarvestModel{},
		&WorkerModel{},
		&EquipmentModel{},
		&ExpenseModel{},
		&IncomeModel{},
	}
}
