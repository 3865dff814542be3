package usecase

import (
	"github.com/jhoicas/Ginebra-api/internal/application/dto"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
)

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	if a == nil {
		return nil
	}
	return &dto.AgentResponse{
		ID:             a.ID,
		CompanyID:      a.CompanyID,
		Username:       a.Username,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		FullName:       a.FullName(),
		NationalID:     a.NationalID,
		BirthDate:      a.BirthDate,
		HireDate:       a.HireDate,
		Phone:          a.Phone,
		PersonalEmail:  a.PersonalEmail,
		Email:          a.Email,
		Address:        a.Address,
		CommissionRate: a.CommissionRate,
		Salary:         a.Salary,
		Status:         string(a.Status),
		Role:           string(a.Role),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Representative:    c.Representative,
		Phone:             c.Phone,
		Email:             c.Email,
		Address:           c.Address,
		LegalName:         c.LegalName,
		ManagementEnabled: c.ManagementEnabled,
		ProductsEnabled:   c.ProductsEnabled,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toAttachmentResponse(a entity.Attachment) *dto.AttachmentResponse {
	if !a.Present() {
		return nil
	}
	return &dto.AttachmentResponse{Name: a.Name, Size: a.Size}
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		ID:               b.ID,
		AgentID:          b.AgentID,
		CompanyID:        b.CompanyID,
		SaleDate:         b.SaleDate,
		TravelDate:       b.TravelDate,
		Product:          b.Product,
		PaymentMode:      b.PaymentMode,
		PassengerName:    b.PassengerName,
		PassengerPhone:   b.PassengerPhone,
		PassengerEmail:   b.PassengerEmail,
		Locators:         b.Locators,
		ExecutiveName:    b.ExecutiveName,
		ExecutiveEmail:   b.ExecutiveEmail,
		Destination:      b.Destination,
		Comments:         b.Comments,
		SalePrice:        b.SalePrice,
		Costs:            b.Costs,
		Bonus:            b.Bonus,
		PaymentStatus:    string(b.PaymentStatus),
		CollectionStatus: string(b.CollectionStatus),
		IssuanceStatus:   string(b.IssuanceStatus),
		NetCost:          b.NetCost,
		GrossProfit:      b.GrossProfit,
		AgentCommission:  b.AgentCommission,
		AgencyMargin:     b.AgencyMargin,
		Attachment:       toAttachmentResponse(b.Attachment),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		Name:            s.Name,
		Location:        s.Location,
		Address:         s.Address,
		Kind:            s.Kind,
		Service:         s.Service,
		ContactName:     s.ContactName,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		CommercialTerms: s.CommercialTerms,
		OperatingArea:   s.OperatingArea,
		LastNegotiation: s.LastNegotiation,
		ValidUntil:      s.ValidUntil,
		State:           string(s.State),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:          c.ID,
		SupplierID:  c.SupplierID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Status:      c.Status,
		Terms:       c.Terms,
		Attachment:  toAttachmentResponse(c.Attachment),
		State:       string(c.State),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCatalogResponse(c *entity.Catalog) *dto.CatalogResponse {
	if c == nil {
		return nil
	}
	return &dto.CatalogResponse{
		ContractResponse:    *toContractResponse(&c.Contract),
		BaseCost:            c.BaseCost,
		SuggestedPrice:      c.SuggestedPrice,
		EstimatedCommission: c.EstimatedCommission,
		Includes:            c.Includes,
	}
}

func toInvoiceResponse(i *entity.Invoice, companyName string) *dto.InvoiceResponse {
	if i == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            i.ID,
		CompanyID:     i.CompanyID,
		CompanyName:   companyName,
		Month:         i.MonthKey(),
		MonthLabel:    report.MonthName(i.Month.Month()) + " " + i.Month.Format("2006"),
		Amount:        i.Amount,
		Status:        string(i.Status),
		PaymentDate:   i.PaymentDate,
		PaymentMethod: i.PaymentMethod,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func toPeriodDTO(p report.Period) dto.PeriodDTO {
	return dto.PeriodDTO{Start: p.Start, End: p.End, Label: p.Label}
}

func toTotalsDTO(t report.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{
		Count:           t.Count,
		SalePrice:       t.SalePrice,
		Costs:           t.Costs,
		NetCost:         t.NetCost,
		Bonus:           t.Bonus,
		GrossProfit:     t.GrossProfit,
		AgentCommission: t.AgentCommission,
		AgencyMargin:    t.AgencyMargin,
		AverageSale:     t.AverageSale(),
	}
}

func toRowDTOs(rows []report.Row, label func(key string) string) []dto.ReportRowDTO {
	out := make([]dto.ReportRowDTO, 0, len(rows))
	for _, r := range rows {
		l := r.Key
		if label != nil {
			l = label(r.Key)
		}
		out = append(out, dto.ReportRowDTO{Key: r.Key, Label: l, TotalsDTO: toTotalsDTO(r.Totals)})
	}
	return out
}

func toEntryDTO(e report.Entry) dto.CommissionEntryDTO {
	b := e.Booking
	rate := e.Result.RateFraction.Mul(hundred)
	return dto.CommissionEntryDTO{
		BookingID:       b.ID,
		SaleDate:        b.SaleDate,
		Executive:       report.AgentKey(e.Line),
		PassengerName:   b.PassengerName,
		Destination:     b.Destination,
		SalePrice:       b.SalePrice,
		NetCost:         e.Result.NetCost,
		GrossProfit:     e.Result.GrossProfit,
		CommissionRate:  rate,
		AgentCommission: e.Result.AgentCommission,
		AgencyMargin:    e.Result.AgencyMargin,
		Bonus:           b.Bonus,
		PaymentStatus:   string(b.PaymentStatus),
	}
}

func toSettlementDTO(s report.Settlement) dto.SettlementDTO {
	status := entity.PaymentUnpaid
	if s.Paid {
		status = entity.PaymentPaid
	}
	return dto.SettlementDTO{
		Key:        s.Key,
		AgentID:    s.AgentID,
		FullName:   s.FullName,
		Count:      s.Count,
		Commission: s.Commission,
		Bonus:      s.Bonus,
		Salary:     s.Salary,
		Discounts:  s.Discounts,
		TotalToPay: s.TotalToPay(),
		Status:     string(status),
	}
}

func toBalanceRowDTO(r report.BalanceRow) dto.BalanceRowDTO {
	return dto.BalanceRowDTO{
		Month:             int(r.Month),
		Label:             r.Label,
		AgentIncome:       r.AgentIncome,
		ExternalIncome:    r.ExternalIncome,
		TotalIncome:       r.Income(),
		CommissionExpense: r.CommissionExpense,
		AdminExpense:      r.AdminExpense,
		OtherExpense:      r.OtherExpense,
		TotalExpense:      r.Expense(),
		Net:               r.Net(),
	}
}

// AgentResponseFrom mapeo de agente para otros paquetes de la capa de aplicación.
func AgentResponseFrom(a *entity.Agent) *dto.AgentResponse { return toAgentResponse(a) }
