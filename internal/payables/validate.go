package payables

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SupplierPayload mirrors the "fornecedor" object of the request body. Fields
// are loosely typed because the source clients send strings and bare numbers
// interchangeably; any primitive that stringifies to a non-empty value is
// accepted.
type SupplierPayload struct {
	Nome        any `json:"nome"`
	RazaoSocial any `json:"razaoSocial"`
	Documento   any `json:"documento"`
	Tipo        any `json:"tipo"`
}

// CreatePayableRequest is the inbound payload of POST /contas-a-pagar.
type CreatePayableRequest struct {
	Valor       any             `json:"valor"`
	Classe      any             `json:"classe"`
	CentroCusto any             `json:"centroCusto"`
	Fornecedor  SupplierPayload `json:"fornecedor"`
}

var validate = validator.New()

type candidateRecord struct {
	Class        string `validate:"required,max=50"`
	CostCenter   string `validate:"required,max=50"`
	SupplierName string `validate:"required,max=255"`
	SupplierDoc  string `validate:"required,max=30"`
	SupplierType string `validate:"required,oneof=PF PJ"`
}

// Wire names reported in ValidationError, keyed by candidate field.
var wireNames = map[string]string{
	"Class":        "classe",
	"CostCenter":   "centroCusto",
	"SupplierName": "fornecedor.nome",
	"SupplierDoc":  "fornecedor.documento",
	"SupplierType": "fornecedor.tipo",
}

// BuildRecord coerces the remaining raw fields, validates every constraint
// and assembles the canonical record. The amount must already be normalized.
// All violations are reported at once; nothing is persisted here.
func BuildRecord(amount decimal.Decimal, req CreatePayableRequest) (PayableRecord, error) {
	name := coerceString(req.Fornecedor.Nome)
	if name == "" {
		name = coerceString(req.Fornecedor.RazaoSocial)
	}

	cand := candidateRecord{
		Class:        coerceString(req.Classe),
		CostCenter:   coerceString(req.CentroCusto),
		SupplierName: name,
		SupplierDoc:  coerceString(req.Fornecedor.Documento),
		SupplierType: coerceString(req.Fornecedor.Tipo),
	}

	if err := validate.Struct(cand); err != nil {
		verr := &ValidationError{}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			if wire, ok := wireNames[fieldErr.StructField()]; ok {
				verr.Fields = append(verr.Fields, wire)
			}
		}
		return PayableRecord{}, verr
	}

	return PayableRecord{
		Amount:     amount,
		Class:      cand.Class,
		CostCenter: cand.CostCenter,
		Supplier: Supplier{
			Name:     cand.SupplierName,
			Document: cand.SupplierDoc,
			Type:     SupplierType(cand.SupplierType),
		},
	}, nil
}

// coerceString renders a loose JSON primitive in its canonical string form.
// Objects and arrays have no canonical form and coerce to the empty string.
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
