package usecase

import (
	"context"

	"github.com/cytochromxxx/StockControl/internal/application/dto"
	"github.com/cytochromxxx/StockControl/internal/domain/repository"
)

// CategoryUseCase lecturas de las definiciones de categoría.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías en su orden de definición.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	_ = ctx
	cats, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = ToCategoryResponse(c)
	}
	return out, nil
}
