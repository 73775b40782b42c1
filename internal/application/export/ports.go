package export

import (
	"context"

	"github.com/cytochromxxx/StockControl/internal/domain/entity"
)

// StockReportGenerator genera el informe de stock en PDF. La implementación
// concreta vive en infrastructure/pdf.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, kits []*entity.Kit) ([]byte, error)
}
