package payables

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence for payable records.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS contas_a_pagar (
    id              BIGSERIAL PRIMARY KEY,
    valor           NUMERIC(12,2) NOT NULL CHECK (valor > 0),
    classe          VARCHAR(50)   NOT NULL,
    centro_custo    VARCHAR(50)   NOT NULL,
    fornecedor_nome VARCHAR(255)  NOT NULL,
    fornecedor_doc  VARCHAR(30)   NOT NULL,
    tipo_fornecedor VARCHAR(2)    NOT NULL CHECK (tipo_fornecedor IN ('PF','PJ')),
    data_registro   TIMESTAMPTZ   NOT NULL DEFAULT now()
)`

// EnsureSchema idempotently provisions the contas_a_pagar table. Existing
// tables are left untouched; a pre-existing incompatible schema surfaces as
// an insert failure later, not here.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("payables: ensure schema: %w", err)
	}
	return nil
}

const insertSQL = `
INSERT INTO contas_a_pagar (valor, classe, centro_custo, fornecedor_nome, fornecedor_doc, tipo_fornecedor)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// Insert writes one validated record and returns the store-assigned
// identifier. The registration timestamp is assigned by the column default.
func (r *Repository) Insert(ctx context.Context, rec PayableRecord) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, insertSQL,
		rec.Amount,
		rec.Class,
		rec.CostCenter,
		rec.Supplier.Name,
		rec.Supplier.Document,
		string(rec.Supplier.Type),
	).Scan(&id)
	if err != nil {
		return 0, &PersistenceError{Err: err}
	}
	return id, nil
}

// Detail returns the most useful diagnostic text for the failure, preferring
// the server-side message when the cause is a PostgreSQL error.
func (e *PersistenceError) Detail() string {
	var pgErr *pgconn.PgError
	if errors.As(e.Err, &pgErr) {
		return pgErr.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
