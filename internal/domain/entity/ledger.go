package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies farm spending.
type ExpenseCategory string

const (
	ExpenseCategoryFeed        ExpenseCategory = "FEED"
	ExpenseCategorySeeds       ExpenseCategory = "SEEDS"
	ExpenseCategoryFertilizer  ExpenseCategory = "FERTILIZER"
	ExpenseCategoryPesticide   ExpenseCategory = "PESTICIDE"
	ExpenseCategoryLabor       ExpenseCategory = "LABOR"
	ExpenseCategoryEquipment   ExpenseCategory = "EQUIPMENT"
	ExpenseCategoryFuel        ExpenseCategory = "FUEL"
	ExpenseCategoryVeterinary  ExpenseCategory = "VETERINARY"
	ExpenseCategoryUtilities   ExpenseCategory = "UTILITIES"
	ExpenseCategoryMaintenance ExpenseCategory = "MAINTENANCE"
	ExpenseCategoryOther       ExpenseCategory = "OTHER"
)

// IncomeCategory classifies farm revenue.
type IncomeCategory string

const (
	IncomeCategoryCropSale      IncomeCategory = "CROP_SALE"
	IncomeCategoryLivestockSale IncomeCategory = "LIVESTOCK_SALE"
	IncomeCategoryProductSale   IncomeCategory = "PRODUCT_SALE"
	IncomeCategoryServices      IncomeCategory = "SERVICES"
	IncomeCategorySubsidy       IncomeCategory = "SUBSIDY"
	IncomeCategoryOther         IncomeCategory = "OTHER"
)

// Expense represents money spent by the farm. Amount is never negative.
type Expense struct {
	ID            uuid.UUID
	Category      ExpenseCategory
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod *string
	Reference     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(category ExpenseCategory, description string, amount decimal.Decimal, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Category:    category,
		Description: description,
		Amount:      amount.Abs(),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Income represents money received by the farm. Amount is never negative.
type Income struct {
	ID            uuid.UUID
	Category      IncomeCategory
	Description   string
	Amount        decimal.Decimal
	Date          time.Time
	PaymentMethod *string
	Reference     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(category IncomeCategory, description string, amount decimal.Decimal, date time.Time) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		Category:    category,
		Description: description,
		Amount:      amount.Abs(),
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
