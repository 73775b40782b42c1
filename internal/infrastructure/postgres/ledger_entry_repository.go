package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// LedgerEntryRepo implementación de LedgerEntryRepository sobre PostgreSQL (usable con pool o tx).
//
// La columna seq (bigserial) materializa el orden más-reciente-primero del
// historial: ORDER BY seq DESC. El timestamp del asiento no sirve para esto
// porque el usuario puede registrar movimientos con fecha retroactiva.
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create inserta un asiento al frente del historial del kit.
func (r *LedgerEntryRepo) Create(kitID string, entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, kit_id, entry_date, amount, person, comment)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, kitID, entry.Date, entry.Amount, entry.Person, entry.Comment,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// UpdateAmount corrige el monto de un asiento existente. La fecha, el
// operador y el comentario del asiento quedan como están.
func (r *LedgerEntryRepo) UpdateAmount(kitID, entryID string, amount decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ledger_entries SET amount = $3 WHERE kit_id = $1 AND id = $2`,
		kitID, entryID, amount,
	)
	if err != nil {
		return fmt.Errorf("update ledger entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete elimina un asiento del historial.
func (r *LedgerEntryRepo) Delete(kitID, entryID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM ledger_entries WHERE kit_id = $1 AND id = $2`,
		kitID, entryID,
	)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// ListByKit devuelve el historial de un kit en orden más-reciente-primero.
func (r *LedgerEntryRepo) ListByKit(kitID string) ([]entity.LedgerEntry, error) {
	query := `
		SELECT id, entry_date, amount, person, comment
		FROM ledger_entries WHERE kit_id = $1 ORDER BY seq DESC`
	rows, err := r.q.Query(context.Background(), query, kitID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	entries := []entity.LedgerEntry{}
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Person, &e.Comment); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// listAll carga el historial de todos los kits agrupado por kit, en orden
// más-reciente-primero. Lo usa KitRepo.List para evitar N+1 consultas.
func (r *LedgerEntryRepo) listAll() (map[string][]entity.LedgerEntry, error) {
	query := `
		SELECT kit_id, id, entry_date, amount, person, comment
		FROM ledger_entries ORDER BY seq DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all ledger entries: %w", err)
	}
	defer rows.Close()

	byKit := make(map[string][]entity.LedgerEntry)
	for rows.Next() {
		var kitID string
		var e entity.LedgerEntry
		if err := rows.Scan(&kitID, &e.ID, &e.Date, &e.Amount, &e.Person, &e.Comment); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		byKit[kitID] = append(byKit[kitID], e)
	}
	return byKit, rows.Err()
}
