package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// periodOptionsMonths meses ofrecidos en los selectores de período.
const periodOptionsMonths = 12

// ReportUseCase reportes de ventas, comisiones y balance. Es de solo lectura: toda
// comisión se recalcula con la tasa vigente del agente, nunca con el valor guardado.
//
// Los reportes por ejecutivo (detalle, ranking, estados, panel de comisiones,
// liquidaciones) consideran solo reservas de ejecutivo, analista y controling.
// El resto (general mensual, balance, por empresa, marketing) considera todos los roles.
type ReportUseCase struct {
	reports   repository.ReportRepository
	companies repository.CompanyRepository
	metrics   ports.Metrics
	log       *logger.Logger
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso. now permite fijar el reloj en tests.
func NewReportUseCase(reports repository.ReportRepository, companies repository.CompanyRepository,
	metrics ports.Metrics, log *logger.Logger, now func() time.Time) *ReportUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{reports: reports, companies: companies, metrics: metrics, log: log, now: now}
}

// filter arma el filtro efectivo para el actor. ejecutivo y analista solo ven sus
// reservas; controling su empresa; master y admin la empresa solicitada o todas.
func (uc *ReportUseCase) filter(actor policy.Actor, req dto.ReportRequest, p report.Period, roles []entity.Role) report.Filter {
	f := report.Filter{
		Period:        p,
		Roles:         roles,
		CompanyID:     policy.ScopeCompany(actor, strings.TrimSpace(req.CompanyID)),
		ExecutiveName: strings.TrimSpace(req.Executive),
	}
	switch {
	case actor.Role == entity.RoleEjecutivo || actor.Role == entity.RoleAnalista:
		f.AgentID = actor.ID
	case !policy.IsTopTier(actor.Role) && actor.CompanyID == "":
		f.AgentID = actor.ID
	}
	return f
}

func (uc *ReportUseCase) lines(ctx context.Context, name string, f report.Filter) ([]report.Line, error) {
	lines, err := uc.reports.Lines(ctx, f)
	if err != nil {
		uc.log.Error().Err(err).Str("report", name).Msg("error generando reporte")
		return nil, err
	}
	uc.metrics.ReportGenerated(name)
	return report.Select(lines, f), nil
}

func (uc *ReportUseCase) period(req dto.ReportRequest) report.Period {
	return report.ResolvePeriod(req.Period, uc.now())
}

// SalesDetail detalle de ventas agrupado por ejecutivo.
func (uc *ReportUseCase) SalesDetail(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.ReportDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "sales_detail", uc.filter(actor, req, p, policy.OperationalRoles()))
	if err != nil {
		return nil, err
	}
	r := report.Aggregate(lines, report.AgentKey)
	return &dto.ReportDTO{
		Title:  "Detalle de ventas",
		Period: toPeriodDTO(p),
		Rows:   toRowDTOs(r.Rows, nil),
		Totals: toTotalsDTO(r.Total),
	}, nil
}

// Ranking ejecutivos ordenados por ganancia neta de la agencia, de mayor a menor.
func (uc *ReportUseCase) Ranking(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.ReportDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "ranking", uc.filter(actor, req, p, policy.OperationalRoles()))
	if err != nil {
		return nil, err
	}
	r := report.Rank(report.Aggregate(lines, report.AgentKey))
	return &dto.ReportDTO{
		Title:  "Ranking de ejecutivos",
		Period: toPeriodDTO(p),
		Rows:   toRowDTOs(r.Rows, nil),
		Totals: toTotalsDTO(r.Total),
	}, nil
}

// SalesStates venta promedio y totales por ejecutivo.
func (uc *ReportUseCase) SalesStates(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.ReportDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "sales_states", uc.filter(actor, req, p, policy.OperationalRoles()))
	if err != nil {
		return nil, err
	}
	r := report.Aggregate(lines, report.AgentKey)
	return &dto.ReportDTO{
		Title:  "Estados de venta",
		Period: toPeriodDTO(p),
		Rows:   toRowDTOs(r.Rows, nil),
		Totals: toTotalsDTO(r.Total),
	}, nil
}

// CommissionPanel cada reserva del período con su comisión recalculada.
func (uc *ReportUseCase) CommissionPanel(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.CommissionPanelDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "commission_panel", uc.filter(actor, req, p, policy.OperationalRoles()))
	if err != nil {
		return nil, err
	}
	return commissionPanel(p, lines), nil
}

// MyBookings panel con las reservas propias del actor, cualquiera sea su rol.
func (uc *ReportUseCase) MyBookings(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.CommissionPanelDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "my_bookings", report.Filter{Period: p, AgentID: actor.ID})
	if err != nil {
		return nil, err
	}
	return commissionPanel(p, lines), nil
}

func commissionPanel(p report.Period, lines []report.Line) *dto.CommissionPanelDTO {
	entries, totals := report.Detail(lines)
	out := &dto.CommissionPanelDTO{
		Period:  toPeriodDTO(p),
		Entries: make([]dto.CommissionEntryDTO, 0, len(entries)),
		Totals:  toTotalsDTO(totals),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, toEntryDTO(e))
	}
	return out
}

// MonthlySummary reporte general del período: totales, estados y desglose por ejecutivo.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.MonthlySummaryDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "monthly_summary", uc.filter(actor, req, p, nil))
	if err != nil {
		return nil, err
	}
	r := report.Aggregate(lines, report.AgentKey)
	s := report.CountStatuses(lines)
	return &dto.MonthlySummaryDTO{
		Period: toPeriodDTO(p),
		Totals: toTotalsDTO(r.Total),
		Statuses: dto.StatusCountsDTO{
			Paid: s.Paid, Unpaid: s.Unpaid,
			Collected: s.Collected, Uncollected: s.Uncollected,
			Issued: s.Issued, Unissued: s.Unissued,
		},
		ByExecutive: toRowDTOs(r.Rows, nil),
	}, nil
}

// Balance balance mes a mes del año solicitado (por defecto el actual). Filtrado por
// empresa deja fuera las reservas de master y admin.
func (uc *ReportUseCase) Balance(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.BalanceDTO, error) {
	year := req.Year
	if year <= 0 {
		year = uc.now().Year()
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, uc.now().Location())
	p := report.Period{Start: start, End: start.AddDate(1, 0, -1), Label: fmt.Sprintf("Año %d", year)}
	f := uc.filter(actor, req, p, nil)
	if f.CompanyID != "" {
		// con empresa seleccionada solo cuentan los roles operativos
		f.Roles = policy.OperationalRoles()
	}
	lines, err := uc.lines(ctx, "balance", f)
	if err != nil {
		return nil, err
	}
	rows, total := report.MonthlyBalance(lines, year)
	out := &dto.BalanceDTO{Year: year, Rows: make([]dto.BalanceRowDTO, 0, len(rows)), Total: toBalanceRowDTO(total)}
	for _, r := range rows {
		out.Rows = append(out.Rows, toBalanceRowDTO(r))
	}
	return out, nil
}

// Settlements liquidación por agente: comisión + bonos + sueldo - descuentos.
func (uc *ReportUseCase) Settlements(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.SettlementsDTO, error) {
	p := uc.period(req)
	lines, err := uc.lines(ctx, "settlements", uc.filter(actor, req, p, policy.OperationalRoles()))
	if err != nil {
		return nil, err
	}
	list := report.Settlements(lines)
	out := &dto.SettlementsDTO{Period: toPeriodDTO(p), Items: make([]dto.SettlementDTO, 0, len(list))}
	for _, s := range list {
		out.Items = append(out.Items, toSettlementDTO(s))
	}
	return out, nil
}

// SettlementDocument datos de la liquidación de un ejecutivo (clave de agrupación)
// para renderizarla en PDF.
func (uc *ReportUseCase) SettlementDocument(ctx context.Context, actor policy.Actor, req dto.ReportRequest, key string) (*dto.SettlementDocument, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: ejecutivo requerido", domain.ErrInvalidInput)
	}
	p := uc.period(req)
	f := uc.filter(actor, req, p, policy.OperationalRoles())
	f.ExecutiveName = key
	lines, err := uc.lines(ctx, "settlement_pdf", f)
	if err != nil {
		return nil, err
	}
	list := report.Settlements(lines)
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	doc := &dto.SettlementDocument{
		Period:      toPeriodDTO(p),
		Settlement:  toSettlementDTO(list[0]),
		GeneratedAt: uc.now(),
	}
	entries, _ := report.Detail(lines)
	for _, e := range entries {
		doc.Entries = append(doc.Entries, toEntryDTO(e))
	}
	if id := lines[0].Booking.CompanyID; id != "" {
		if c, err := uc.companies.GetByID(ctx, id); err == nil && c != nil {
			doc.CompanyName = c.Name
		}
	}
	return doc, nil
}

// ByCompany totales agrupados por empresa. Las reservas y el listado de empresas se
// consultan en paralelo.
func (uc *ReportUseCase) ByCompany(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.ReportDTO, error) {
	p := uc.period(req)
	f := uc.filter(actor, req, p, nil)

	type linesResult struct {
		lines []report.Line
		err   error
	}
	type companiesResult struct {
		names map[string]string
		err   error
	}
	linesChan := make(chan linesResult, 1)
	companiesChan := make(chan companiesResult, 1)

	go func() {
		lines, err := uc.lines(ctx, "by_company", f)
		linesChan <- linesResult{lines, err}
	}()
	go func() {
		list, _, err := uc.companies.List(ctx, 0, 0)
		names := make(map[string]string, len(list))
		for _, c := range list {
			names[c.ID] = c.Name
		}
		companiesChan <- companiesResult{names, err}
	}()

	lr := <-linesChan
	cr := <-companiesChan
	if lr.err != nil {
		return nil, lr.err
	}
	if cr.err != nil {
		return nil, cr.err
	}

	r := report.Aggregate(lr.lines, report.CompanyKey)
	label := func(id string) string {
		if name, ok := cr.names[id]; ok {
			return name
		}
		if id == "" {
			return "Sin empresa"
		}
		return id
	}
	return &dto.ReportDTO{
		Title:  "Ventas por empresa",
		Period: toPeriodDTO(p),
		Rows:   toRowDTOs(r.Rows, label),
		Totals: toTotalsDTO(r.Total),
	}, nil
}

// Marketing contactos de pasajeros cuyo viaje cae en el período, sin repetir correo.
func (uc *ReportUseCase) Marketing(ctx context.Context, actor policy.Actor, req dto.ReportRequest) (*dto.MarketingDTO, error) {
	p := uc.period(req)
	f := uc.filter(actor, req, p, nil)
	f.ByTravelDate = true
	lines, err := uc.lines(ctx, "marketing", f)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(lines))
	out := &dto.MarketingDTO{Period: toPeriodDTO(p), Contacts: make([]dto.MarketingContactDTO, 0, len(lines))}
	for _, l := range lines {
		b := l.Booking
		if b.PassengerName == "" && b.PassengerEmail == "" && b.PassengerPhone == "" {
			continue
		}
		if email := strings.ToLower(b.PassengerEmail); email != "" {
			if seen[email] {
				continue
			}
			seen[email] = true
		}
		out.Contacts = append(out.Contacts, dto.MarketingContactDTO{
			PassengerName:  b.PassengerName,
			PassengerEmail: b.PassengerEmail,
			PassengerPhone: b.PassengerPhone,
			Destination:    b.Destination,
			TravelDate:     b.TravelDate,
			Executive:      report.AgentKey(l),
		})
	}
	return out, nil
}

// PeriodOptions últimos doce meses, del más reciente al más antiguo, más los presets.
func (uc *ReportUseCase) PeriodOptions() []dto.PeriodOptionDTO {
	months := report.PreviousMonths(uc.now(), periodOptionsMonths)
	out := make([]dto.PeriodOptionDTO, 0, len(months)+2)
	out = append(out,
		dto.PeriodOptionDTO{Value: report.PresetLast30Days, Label: "Últimos 30 días"},
		dto.PeriodOptionDTO{Value: report.PresetCurrentMonth, Label: "Mes actual"},
	)
	for i := len(months) - 1; i >= 0; i-- {
		out = append(out, dto.PeriodOptionDTO{Value: months[i].Value, Label: months[i].Label})
	}
	return out
}
