package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/form"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/money"
)

// InvoiceUseCase facturas mensuales a empresas. Solo master y admin.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, companies: companies}
}

func parseInvoiceMonth(s string) (time.Time, error) {
	year, month, ok := report.ParseMonth(s)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: mes inválido %q", domain.ErrInvalidInput, s)
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

func parseInvoiceStatus(s string) (entity.InvoiceStatus, error) {
	switch st := entity.InvoiceStatus(strings.TrimSpace(s)); st {
	case "":
		return entity.InvoiceUnpaid, nil
	case entity.InvoicePaid, entity.InvoiceUnpaid:
		return st, nil
	}
	return "", fmt.Errorf("%w: estado de factura inválido", domain.ErrInvalidInput)
}

// Create registra la factura de una empresa para un mes.
func (uc *InvoiceUseCase) Create(ctx context.Context, actor policy.Actor, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	month, err := parseInvoiceMonth(in.Month)
	if err != nil {
		return nil, err
	}
	status, err := parseInvoiceStatus(in.Status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CompanyID:     company.ID,
		Month:         month,
		Amount:        money.Parse(string(in.Amount)),
		Status:        status,
		PaymentDate:   form.ParseDate(in.PaymentDate),
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, company.Name), nil
}

// Update modifica los campos presentes.
func (uc *InvoiceUseCase) Update(ctx context.Context, actor policy.Actor, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Month != nil {
		if inv.Month, err = parseInvoiceMonth(*in.Month); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if inv.Status, err = parseInvoiceStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	if in.Amount != nil {
		inv.Amount = money.Parse(string(*in.Amount))
	}
	if in.PaymentDate != nil {
		inv.PaymentDate = form.ParseDate(*in.PaymentDate)
	}
	setTrimmed(&inv.PaymentMethod, in.PaymentMethod)
	setTrimmed(&inv.Notes, in.Notes)
	inv.UpdatedAt = time.Now()
	if err := uc.invoices.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, uc.companyName(ctx, inv.CompanyID, nil)), nil
}

func (uc *InvoiceUseCase) load(ctx context.Context, actor policy.Actor, id string) (*entity.Invoice, error) {
	if !policy.CanManageCompanies(actor) {
		return nil, domain.ErrForbidden
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// GetByID devuelve una factura.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, actor policy.Actor, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, uc.companyName(ctx, inv.CompanyID, nil)), nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := uc.load(ctx, actor, id); err != nil {
		return err
	}
	return uc.invoices.Delete(ctx, id)
}

// List lista facturas por empresa y/o mes, con el total facturado de la página.
func (uc *InvoiceUseCase) List(ctx context.Context, actor policy.Actor, in dto.InvoiceListRequest) (*dto.InvoiceListResponse, error) {
	in.DefaultPage()
	f, err := uc.filter(actor, in)
	if err != nil {
		return nil, err
	}
	f.Limit, f.Offset = in.Limit, in.Offset
	list, total, err := uc.invoices.List(ctx, f)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	items := make([]dto.InvoiceResponse, 0, len(list))
	sum := decimal.Zero
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv, uc.companyName(ctx, inv.CompanyID, names)))
		sum = sum.Add(inv.Amount)
	}
	return &dto.InvoiceListResponse{
		Items:       items,
		Page:        dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
		TotalAmount: sum,
	}, nil
}

// ListAll sin paginar (exportaciones).
func (uc *InvoiceUseCase) ListAll(ctx context.Context, actor policy.Actor, in dto.InvoiceListRequest) ([]dto.InvoiceResponse, error) {
	f, err := uc.filter(actor, in)
	if err != nil {
		return nil, err
	}
	list, _, err := uc.invoices.List(ctx, f)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv, uc.companyName(ctx, inv.CompanyID, names)))
	}
	return out, nil
}

func (uc *InvoiceUseCase) filter(actor policy.Actor, in dto.InvoiceListRequest) (repository.InvoiceFilter, error) {
	if !policy.CanManageCompanies(actor) {
		return repository.InvoiceFilter{}, domain.ErrForbidden
	}
	f := repository.InvoiceFilter{CompanyID: strings.TrimSpace(in.CompanyID)}
	if strings.TrimSpace(in.Month) != "" {
		m, err := parseInvoiceMonth(in.Month)
		if err != nil {
			return f, err
		}
		f.Month = &m
	}
	return f, nil
}

// companyName nombre de la empresa; cache evita repetir consultas dentro de un listado.
func (uc *InvoiceUseCase) companyName(ctx context.Context, id string, cache map[string]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	var name string
	if c, err := uc.companies.GetByID(ctx, id); err == nil && c != nil {
		name = c.Name
	}
	if cache != nil {
		cache[id] = name
	}
	return name
}
