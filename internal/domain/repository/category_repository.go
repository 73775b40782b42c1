package repository

import "github.com/cytochromxxx/StockControl/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para CategoryDef (DIP).
// List devuelve las categorías en su orden de definición; ese orden gobierna
// el dashboard.
type CategoryRepository interface {
	List() ([]*entity.CategoryDef, error)
	GetByKey(key string) (*entity.CategoryDef, error)
}
