package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/farm-manager/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category      string          `gorm:"type:varchar(30);not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod *string         `gorm:"type:varchar(30)"`
	Reference     *string         `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		Category:      entity.ExpenseCategory(m.Category),
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAtPtr(m.DeletedAt),
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		Category:      string(expense.Category),
		Description:   expense.Description,
		Amount:        expense.Amount,
		Date:          expense.Date,
		PaymentMethod: expense.PaymentMethod,
		Reference:     expense.Reference,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
		DeletedAt:     deletedAtFrom(expense.DeletedAt),
	}
}

// IncomeModel represents the income table in the database.
type IncomeModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category      string          `gorm:"type:varchar(30);not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod *string         `gorm:"type:varchar(30)"`
	Reference     *string         `gorm:"type:varchar(100)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:            m.ID,
		Category:      entity.IncomeCategory(m.Category),
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAtPtr(m.DeletedAt),
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:            income.ID,
		Category:      string(income.Category),
		Description:   income.Description,
		Amount:        income.Amount,
		Date:          income.Date,
		PaymentMethod: income.PaymentMethod,
		Reference:     income.Reference,
		CreatedAt:     income.CreatedAt,
		UpdatedAt:     income.UpdatedAt,
		DeletedAt:     deletedAtFrom(income.DeletedAt),
	}
}
