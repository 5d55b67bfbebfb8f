package payables

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Supplier person types, as stored.
type SupplierType string

const (
	SupplierIndividual   SupplierType = "PF"
	SupplierOrganization SupplierType = "PJ"
)

// Valid reports whether the type is one of the two recognised values.
func (t SupplierType) Valid() bool {
	return t == SupplierIndividual || t == SupplierOrganization
}

// Supplier is the party to be paid, denormalized onto the payable row.
type Supplier struct {
	Name     string
	Document string
	Type     SupplierType
}

// PayableRecord is one accounts-payable entry. ID and RegisteredAt are
// assigned by the store at insert time.
type PayableRecord struct {
	ID           int64
	Amount       decimal.Decimal
	Class        string
	CostCenter   string
	Supplier     Supplier
	RegisteredAt time.Time
}

var (
	// ErrAmountRequired indicates the amount field was absent or empty.
	ErrAmountRequired = errors.New("valor é obrigatório")
	// ErrInvalidAmount indicates the amount is not a positive number.
	ErrInvalidAmount = errors.New("valor deve ser um número positivo")
)

// ValidationError aggregates every violated field constraint of a candidate
// record. Fields carry the wire names of the request payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos obrigatórios ausentes ou inválidos: %s", strings.Join(e.Fields, ", "))
}

// PersistenceError wraps a failed write, carrying the underlying cause.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
