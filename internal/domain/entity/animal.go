// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnimalType represents the species group of a farm animal.
type AnimalType string

const (
	AnimalTypeCattle  AnimalType = "CATTLE"
	AnimalTypeGoat    AnimalType = "GOAT"
	AnimalTypeSheep   AnimalType = "SHEEP"
	AnimalTypePig     AnimalType = "PIG"
	AnimalTypePoultry AnimalType = "POULTRY"
	AnimalTypeRabbit  AnimalType = "RABBIT"
	AnimalTypeOther   AnimalType = "OTHER"
)

// MatchName returns the lowercase name used to match the type against free text.
func (t AnimalType) MatchName() string {
	return strings.ToLower(string(t))
}

// AnimalStatus represents the lifecycle status of an animal.
type AnimalStatus string

const (
	AnimalStatusActive      AnimalStatus = "ACTIVE"
	AnimalStatusSold        AnimalStatus = "SOLD"
	AnimalStatusDeceased    AnimalStatus = "DECEASED"
	AnimalStatusTransferred AnimalStatus = "TRANSFERRED"
)

// Animal represents a single head of livestock.
type Animal struct {
	ID        uuid.UUID
	TagNumber string
	Type      AnimalType
	Breed     string
	Status    AnimalStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewAnimal creates a new active Animal entity.
func NewAnimal(tagNumber string, animalType AnimalType, breed string) *Animal {
	now := time.Now().UTC()

	return &Animal{
		ID:        uuid.New(),
		TagNumber: tagNumber,
		Type:      animalType,
		Breed:     breed,
		Status:    AnimalStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
