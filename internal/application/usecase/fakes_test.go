package usecase_test

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/report"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/internal/application/usecase"
)

// ── Agentes ───────────────────────────────────────────────────────────────────

type fakeAgents struct {
	mu   sync.Mutex
	byID map[string]*entity.Agent
}

func newFakeAgents(agents ...*entity.Agent) *fakeAgents {
	f := &fakeAgents{byID: map[string]*entity.Agent{}}
	for _, a := range agents {
		f.byID[a.ID] = a
	}
	return f
}

func (f *fakeAgents) Create(_ context.Context, a *entity.Agent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.byID[a.ID] = &cp
	return nil
}

func (f *fakeAgents) Update(ctx context.Context, a *entity.Agent) error { return f.Create(ctx, a) }

func (f *fakeAgents) GetByID(_ context.Context, id string) (*entity.Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAgents) find(match func(*entity.Agent) bool) *entity.Agent {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if match(a) {
			cp := *a
			return &cp
		}
	}
	return nil
}

func (f *fakeAgents) GetByUsername(_ context.Context, username string) (*entity.Agent, error) {
	return f.find(func(a *entity.Agent) bool { return a.Username == username }), nil
}

func (f *fakeAgents) GetByEmail(_ context.Context, email string) (*entity.Agent, error) {
	return f.find(func(a *entity.Agent) bool { return strings.EqualFold(a.Email, email) }), nil
}

func (f *fakeAgents) FindDuplicate(_ context.Context, agent *entity.Agent, excludeID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.ID == excludeID {
			continue
		}
		switch {
		case a.Username == agent.Username:
			return "username", nil
		case agent.NationalID != "" && a.NationalID == agent.NationalID:
			return "rut", nil
		case strings.EqualFold(a.Email, agent.Email):
			return "email", nil
		}
	}
	return "", nil
}

func (f *fakeAgents) List(_ context.Context, flt repository.AgentFilter) ([]*entity.Agent, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Agent
	for _, a := range f.byID {
		if flt.CompanyID != "" && a.CompanyID != flt.CompanyID {
			continue
		}
		if flt.ExcludeUsername != "" && a.Username == flt.ExcludeUsername {
			continue
		}
		if flt.OnlyID != "" && a.ID != flt.OnlyID {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, len(out), nil
}

// ── Reservas ──────────────────────────────────────────────────────────────────

type fakeBookings struct {
	mu   sync.Mutex
	byID map[string]*entity.Booking
}

func newFakeBookings() *fakeBookings { return &fakeBookings{byID: map[string]*entity.Booking{}} }

func (f *fakeBookings) Create(_ context.Context, b *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *b
	if prev, ok := f.byID[b.ID]; ok && b.Attachment.Content == nil {
		cp.Attachment.Content = prev.Attachment.Content
	}
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeBookings) Update(ctx context.Context, b *entity.Booking) error { return f.Create(ctx, b) }

func (f *fakeBookings) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	cp.Attachment.Content = nil
	return &cp, nil
}

func (f *fakeBookings) GetAttachment(_ context.Context, id string) (*entity.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	att := b.Attachment
	return &att, nil
}

func (f *fakeBookings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeBookings) List(_ context.Context, flt repository.BookingFilter) ([]*entity.Booking, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.byID {
		if flt.AgentID != "" && b.AgentID != flt.AgentID {
			continue
		}
		if flt.CompanyID != "" && b.CompanyID != flt.CompanyID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

// ── Transacciones ─────────────────────────────────────────────────────────────

type fakeTx struct {
	bookings *fakeBookings
	agents   *fakeAgents
	runs     int
}

var _ usecase.TxRunner = (*fakeTx)(nil)

func (t *fakeTx) RunBooking(_ context.Context, fn func(repository.BookingRepository, repository.AgentRepository) error) error {
	t.runs++
	return fn(t.bookings, t.agents)
}

func (t *fakeTx) RunAgents(_ context.Context, fn func(repository.AgentRepository) error) error {
	t.runs++
	return fn(t.agents)
}

// ── Empresas ──────────────────────────────────────────────────────────────────

type fakeCompanies struct {
	byID    map[string]*entity.Company
	deps    map[string]entity.CompanyDependents
	deleted []string
}

func newFakeCompanies(companies ...*entity.Company) *fakeCompanies {
	f := &fakeCompanies{byID: map[string]*entity.Company{}, deps: map[string]entity.CompanyDependents{}}
	for _, c := range companies {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCompanies) Create(_ context.Context, c *entity.Company) error { f.byID[c.ID] = c; return nil }
func (f *fakeCompanies) Update(_ context.Context, c *entity.Company) error { f.byID[c.ID] = c; return nil }

func (f *fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCompanies) List(_ context.Context, limit, offset int) ([]*entity.Company, int, error) {
	var out []*entity.Company
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCompanies) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCompanies) CountDependents(_ context.Context, id string) (entity.CompanyDependents, error) {
	return f.deps[id], nil
}

// ── Proveedores, contratos y catálogos ────────────────────────────────────────

type fakeLifecycle[T any] struct {
	byID    map[string]*T
	states  map[string]entity.Lifecycle
	deleted []string
}

func newFakeLifecycle[T any]() fakeLifecycle[T] {
	return fakeLifecycle[T]{byID: map[string]*T{}, states: map[string]entity.Lifecycle{}}
}

func (f *fakeLifecycle[T]) GetByID(_ context.Context, id string) (*T, error) {
	v, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeLifecycle[T]) SetState(_ context.Context, id string, state entity.Lifecycle) error {
	f.states[id] = state
	return nil
}

func (f *fakeLifecycle[T]) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSuppliers struct {
	fakeLifecycle[entity.Supplier]
	deps map[string]entity.SupplierDependents
}

func newFakeSuppliers(suppliers ...*entity.Supplier) *fakeSuppliers {
	f := &fakeSuppliers{fakeLifecycle: newFakeLifecycle[entity.Supplier](), deps: map[string]entity.SupplierDependents{}}
	for _, s := range suppliers {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSuppliers) Create(_ context.Context, s *entity.Supplier) error { f.byID[s.ID] = s; return nil }
func (f *fakeSuppliers) Update(_ context.Context, s *entity.Supplier) error { f.byID[s.ID] = s; return nil }

func (f *fakeSuppliers) List(_ context.Context, flt repository.SupplierFilter) ([]*entity.Supplier, int, error) {
	var out []*entity.Supplier
	for _, s := range f.byID {
		if flt.CompanyID != "" && s.CompanyID != flt.CompanyID {
			continue
		}
		out = append(out, s)
	}
	return out, len(out), nil
}

func (f *fakeSuppliers) CountDependents(_ context.Context, id string) (entity.SupplierDependents, error) {
	return f.deps[id], nil
}

type fakeContracts struct {
	fakeLifecycle[entity.Contract]
}

func newFakeContracts() *fakeContracts {
	return &fakeContracts{fakeLifecycle: newFakeLifecycle[entity.Contract]()}
}

func (f *fakeContracts) Create(_ context.Context, c *entity.Contract) error { f.byID[c.ID] = c; return nil }
func (f *fakeContracts) Update(_ context.Context, c *entity.Contract) error { f.byID[c.ID] = c; return nil }

func (f *fakeContracts) List(_ context.Context, _ repository.ContractFilter) ([]*entity.Contract, int, error) {
	var out []*entity.Contract
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeContracts) GetAttachment(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &c.Attachment, nil
}

type fakeCatalogs struct {
	fakeLifecycle[entity.Catalog]
}

func newFakeCatalogs() *fakeCatalogs {
	return &fakeCatalogs{fakeLifecycle: newFakeLifecycle[entity.Catalog]()}
}

func (f *fakeCatalogs) Create(_ context.Context, c *entity.Catalog) error { f.byID[c.ID] = c; return nil }
func (f *fakeCatalogs) Update(_ context.Context, c *entity.Catalog) error { f.byID[c.ID] = c; return nil }

func (f *fakeCatalogs) List(_ context.Context, _ repository.ContractFilter) ([]*entity.Catalog, int, error) {
	var out []*entity.Catalog
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCatalogs) GetAttachment(_ context.Context, id string) (*entity.Attachment, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &c.Attachment, nil
}

// ── Reportes ──────────────────────────────────────────────────────────────────

// fakeReports une reservas y agentes en memoria, como lo haría el JOIN en SQL.
type fakeReports struct {
	bookings *fakeBookings
	agents   *fakeAgents
	lastSeen report.Filter
}

func (f *fakeReports) Lines(ctx context.Context, flt report.Filter) ([]report.Line, error) {
	f.lastSeen = flt
	list, _, _ := f.bookings.List(ctx, repository.BookingFilter{})
	out := make([]report.Line, 0, len(list))
	for _, b := range list {
		a, _ := f.agents.GetByID(ctx, b.AgentID)
		out = append(out, report.Line{Booking: b, Agent: a})
	}
	return out, nil
}

// ── Métricas ──────────────────────────────────────────────────────────────────

type fakeMetrics struct {
	mu      sync.Mutex
	saved   map[string]int
	reports map[string]int
	refused map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{saved: map[string]int{}, reports: map[string]int{}, refused: map[string]int{}}
}

func (m *fakeMetrics) BookingSaved(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[op]++
}

func (m *fakeMetrics) ReportGenerated(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[name]++
}

func (m *fakeMetrics) DeleteRefused(e string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refused[e]++
}
