package repository

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/domain/report"
)

// ReportRepository consultas de lectura para reportes. Las implementaciones son read-only.
type ReportRepository interface {
	// Lines devuelve las reservas que cumplen el filtro junto a su agente dueño
	// (con la tasa de comisión vigente), ordenadas por fecha de venta.
	Lines(ctx context.Context, f report.Filter) ([]report.Line, error)
}
