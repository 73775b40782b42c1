package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cytochromxxx/StockControl/internal/domain"
	"github.com/cytochromxxx/StockControl/internal/domain/entity"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

var _ repository.KitRepository = (*KitRepo)(nil)

const kitColumns = `id, name, category, description, linked_products, start_volume, current_volume, critical_threshold, created_at, updated_at`

// KitRepo implementación del puerto KitRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas devuelven el kit con su historial completo en orden
// más-reciente-primero (ver LedgerEntryRepo).
type KitRepo struct {
	q Querier
}

// NewKitRepository construye el adaptador de persistencia para kits. Pasar pool o tx (Querier).
func NewKitRepository(q Querier) *KitRepo {
	return &KitRepo{q: q}
}

// Create persiste un kit nuevo. El asiento inicial se inserta aparte, dentro
// de la misma transacción.
func (r *KitRepo) Create(kit *entity.Kit) error {
	query := `
		INSERT INTO kits (` + kitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		kit.ID, kit.Name, kit.Category, kit.Description, kit.LinkedProducts,
		kit.StartVolume, kit.CurrentVolume, kit.CriticalThreshold, kit.CreatedAt, kit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kit: %w", err)
	}
	return nil
}

// GetByID obtiene un kit por ID con su historial cargado.
func (r *KitRepo) GetByID(id string) (*entity.Kit, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el kit bloqueando su fila (SELECT FOR UPDATE). Usar
// solo dentro de una transacción: serializa las mutaciones del ledger por kit.
func (r *KitRepo) GetForUpdate(id string) (*entity.Kit, error) {
	return r.get(id, true)
}

func (r *KitRepo) get(id string, forUpdate bool) (*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var k entity.Kit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&k.ID, &k.Name, &k.Category, &k.Description, &k.LinkedProducts,
		&k.StartVolume, &k.CurrentVolume, &k.CriticalThreshold, &k.CreatedAt, &k.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kit: %w", err)
	}
	history, err := NewLedgerEntryRepository(r.q).ListByKit(k.ID)
	if err != nil {
		return nil, err
	}
	k.History = history
	return &k, nil
}

// List devuelve todos los kits con historial. El historial de todos los kits
// se carga en una sola consulta y se reparte en memoria.
func (r *KitRepo) List() ([]*entity.Kit, error) {
	query := `SELECT ` + kitColumns + ` FROM kits ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list kits: %w", err)
	}
	defer rows.Close()

	var list []*entity.Kit
	for rows.Next() {
		var k entity.Kit
		if err := rows.Scan(&k.ID, &k.Name, &k.Category, &k.Description, &k.LinkedProducts,
			&k.StartVolume, &k.CurrentVolume, &k.CriticalThreshold, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kit: %w", err)
		}
		k.History = []entity.LedgerEntry{}
		list = append(list, &k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byKit, err := NewLedgerEntryRepository(r.q).listAll()
	if err != nil {
		return nil, err
	}
	for _, k := range list {
		if h, ok := byKit[k.ID]; ok {
			k.History = h
		}
	}
	return list, nil
}

// UpdateFields persiste solo los campos editables. El volumen y el historial
// no son alcanzables por esta vía.
func (r *KitRepo) UpdateFields(kit *entity.Kit) error {
	query := `
		UPDATE kits SET name = $2, category = $3, description = $4, linked_products = $5, critical_threshold = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		kit.ID, kit.Name, kit.Category, kit.Description, kit.LinkedProducts,
		kit.CriticalThreshold, kit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateVolume persiste el volumen recalculado por el motor del ledger.
func (r *KitRepo) UpdateVolume(id string, volume decimal.Decimal, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE kits SET current_volume = $2, updated_at = $3 WHERE id = $1`,
		id, volume, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kit volume: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el kit y, por cascada, todo su historial. Irreversible.
func (r *KitRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM kits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete kit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
