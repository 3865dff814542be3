package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes: cada reserva junto a su agente dueño.
type ReportRepo struct {
	db Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db Querier) *ReportRepo {
	return &ReportRepo{db: db}
}

// Lines filtra por rango de fechas, empresa, agente y roles en SQL. El filtro por nombre de
// ejecutivo depende de AgentKey y lo aplica report.Select sobre el resultado.
func (r *ReportRepo) Lines(ctx context.Context, f report.Filter) ([]report.Line, error) {
	dateCol := "b.sale_date"
	if f.ByTravelDate {
		dateCol = "b.travel_date"
	}
	var w where
	w.add(dateCol+" >= ?::date", f.Period.Start)
	w.add(dateCol+" <= ?::date", f.Period.End)
	if f.CompanyID != "" {
		w.add("b.company_id::text = ?", f.CompanyID)
	}
	if f.AgentID != "" {
		w.add("b.agent_id::text = ?", f.AgentID)
	}
	if len(f.Roles) > 0 {
		roles := make([]string, len(f.Roles))
		for i, role := range f.Roles {
			roles[i] = string(role)
		}
		w.add("a.role = ANY(?)", roles)
	}

	query := `SELECT ` + prefixed(bookingColumns, "b") + `, ` + prefixed(agentColumns, "a") + `
		FROM bookings b
		JOIN agents a ON a.id = b.agent_id` + w.String() + `
		ORDER BY ` + dateCol + `, b.created_at`
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("report lines: %w", err)
	}
	defer rows.Close()

	var lines []report.Line
	for rows.Next() {
		var b entity.Booking
		var a entity.Agent
		var bookingCompany, agentCompany *string
		var statuses [3]string
		var status, role string
		dest := bookingDest(&b, &bookingCompany, &statuses)
		dest = append(dest, agentDest(&a, &agentCompany, &status, &role)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan report line: %w", err)
		}
		finishBooking(&b, bookingCompany, statuses)
		finishAgent(&a, agentCompany, status, role)
		lines = append(lines, report.Line{Booking: &b, Agent: &a})
	}
	return lines, rows.Err()
}

// prefixed antepone alias a cada columna de una lista separada por comas.
func prefixed(columns, alias string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
