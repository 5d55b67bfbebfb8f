package payables

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validRequest() CreatePayableRequest {
	return CreatePayableRequest{
		Valor:       1500.00,
		Classe:      "Aluguel",
		CentroCusto: "Matriz",
		Fornecedor: SupplierPayload{
			Nome:      "Acme",
			Documento: "12345678900",
			Tipo:      "PF",
		},
	}
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestBuildRecordValid(t *testing.T) {
	rec, err := BuildRecord(mustAmount(t, "1500.00"), validRequest())
	require.NoError(t, err)
	require.Equal(t, "Aluguel", rec.Class)
	require.Equal(t, "Matriz", rec.CostCenter)
	require.Equal(t, "Acme", rec.Supplier.Name)
	require.Equal(t, "12345678900", rec.Supplier.Document)
	require.Equal(t, SupplierIndividual, rec.Supplier.Type)
	require.True(t, rec.Supplier.Type.Valid())
}

func TestBuildRecordCoercesPrimitives(t *testing.T) {
	req := validRequest()
	req.Classe = 2024.0
	req.Fornecedor.Documento = 12345678900.0
	rec, err := BuildRecord(mustAmount(t, "10"), req)
	require.NoError(t, err)
	require.Equal(t, "2024", rec.Class)
	require.Equal(t, "12345678900", rec.Supplier.Document)
}

func TestBuildRecordSupplierNameFallback(t *testing.T) {
	req := validRequest()
	req.Fornecedor.Nome = nil
	req.Fornecedor.RazaoSocial = "Acme LTDA"
	rec, err := BuildRecord(mustAmount(t, "10"), req)
	require.NoError(t, err)
	require.Equal(t, "Acme LTDA", rec.Supplier.Name)

	// First non-empty value wins.
	req.Fornecedor.Nome = "Acme"
	rec, err = BuildRecord(mustAmount(t, "10"), req)
	require.NoError(t, err)
	require.Equal(t, "Acme", rec.Supplier.Name)
}

func TestBuildRecordAggregatesViolations(t *testing.T) {
	_, err := BuildRecord(mustAmount(t, "10"), CreatePayableRequest{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ElementsMatch(t, []string{
		"classe",
		"centroCusto",
		"fornecedor.nome",
		"fornecedor.documento",
		"fornecedor.tipo",
	}, verr.Fields)
	require.Contains(t, verr.Error(), "classe")
}

func TestBuildRecordRejectsUnknownSupplierType(t *testing.T) {
	req := validRequest()
	req.Fornecedor.Tipo = "XX"
	_, err := BuildRecord(mustAmount(t, "10"), req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"fornecedor.tipo"}, verr.Fields)
}

func TestBuildRecordRejectsMissingDocument(t *testing.T) {
	req := validRequest()
	req.Fornecedor.Documento = "  "
	_, err := BuildRecord(mustAmount(t, "10"), req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"fornecedor.documento"}, verr.Fields)
}

func TestBuildRecordLengthBounds(t *testing.T) {
	req := validRequest()
	req.Classe = strings.Repeat("x", 51)
	_, err := BuildRecord(mustAmount(t, "10"), req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"classe"}, verr.Fields)
}
