package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkerStatus represents the employment status of a farm worker.
type WorkerStatus string

const (
	WorkerStatusActive     WorkerStatus = "ACTIVE"
	WorkerStatusInactive   WorkerStatus = "INACTIVE"
	WorkerStatusTerminated WorkerStatus = "TERMINATED"
)

// Worker represents a person employed on the farm.
type Worker struct {
	ID        uuid.UUID
	Name      string
	Role      string
	Status    WorkerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWorker creates a new active Worker entity.
func NewWorker(name, role string) *Worker {
	now := time.Now().UTC()

	return &Worker{
		ID:        uuid.New(),
		Name:      name,
		Role:      role,
		Status:    WorkerStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EquipmentStatus represents the condition of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentStatusOperational EquipmentStatus = "OPERATIONAL"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentStatusRepair      EquipmentStatus = "REPAIR"
	EquipmentStatusRetired     EquipmentStatus = "RETIRED"
)

// Equipment represents a machine or tool owned by the farm.
type Equipment struct {
	ID        uuid.UUID
	Name      string
	Type      string
	Status    EquipmentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEquipment creates a new operational Equipment entity.
func NewEquipment(name, equipmentType string) *Equipment {
	now := time.Now().UTC()

	return &Equipment{
		ID:        uuid.New(),
		Name:      name,
		Type:      equipmentType,
		Status:    EquipmentStatusOperational,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
