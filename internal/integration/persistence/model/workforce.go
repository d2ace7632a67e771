package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// WorkerModel represents the workers table in the database.
type WorkerModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Role      string    `gorm:"type:varchar(50)"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the WorkerModel.
func (WorkerModel) TableName() string {
	return "workers"
}

// ToEntity converts a WorkerModel to a domain Worker entity.
func (m *WorkerModel) ToEntity() *entity.Worker {
	return &entity.Worker{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Status:    entity.WorkerStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// WorkerFromEntity creates a WorkerModel from a domain Worker entity.
func WorkerFromEntity(worker *entity.Worker) *WorkerModel {
	return &WorkerModel{
		ID:        worker.ID,
		Name:      worker.Name,
		Role:      worker.Role,
		Status:    string(worker.Status),
		CreatedAt: worker.CreatedAt,
		UpdatedAt: worker.UpdatedAt,
	}
}

// EquipmentModel represents the equipment table in the database.
type EquipmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Type      string    `gorm:"type:varchar(50)"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EquipmentModel.
func (EquipmentModel) TableName() string {
	return "equipment"
}

// ToEntity converts an EquipmentModel to a domain Equipment entity.
func (m *EquipmentModel) ToEntity() *entity.Equipment {
	return &entity.Equipment{
		ID:        m.ID,
		Name:      m.Name,
		Type:      m.Type,
		Status:    entity.EquipmentStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// EquipmentFromEntity creates an EquipmentModel from a domain Equipment entity.
func EquipmentFromEntity(equipment *entity.Equipment) *EquipmentModel {
	return &EquipmentModel{
		ID:        equipment.ID,
		Name:      equipment.Name,
		Type:      equipment.Type,
		Status:    string(equipment.Status),
		CreatedAt: equipment.CreatedAt,
		UpdatedAt: equipment.UpdatedAt,
	}
}
