package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

const agentColumns = `id, company_id, username, password_hash, first_name, last_name, national_id,
	birth_date, hire_date, phone, personal_email, email, address, commission_rate, salary,
	status, role, created_at, updated_at`

// AgentRepo implementación del puerto AgentRepository sobre PostgreSQL.
type AgentRepo struct {
	db Querier
}

// NewAgentRepository construye el adaptador de persistencia para agentes.
func NewAgentRepository(db Querier) *AgentRepo {
	return &AgentRepo{db: db}
}

// Create persiste un nuevo agente.
func (r *AgentRepo) Create(ctx context.Context, a *entity.Agent) error {
	query := `INSERT INTO agents (` + agentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		a.ID, nullable(a.CompanyID), a.Username, a.PasswordHash, a.FirstName, a.LastName, a.NationalID,
		a.BirthDate, a.HireDate, a.Phone, a.PersonalEmail, a.Email, a.Address, a.CommissionRate, a.Salary,
		string(a.Status), string(a.Role), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert agent", err)
	}
	return nil
}

// Update reescribe todos los campos del agente.
func (r *AgentRepo) Update(ctx context.Context, a *entity.Agent) error {
	query := `
		UPDATE agents SET company_id = $2, username = $3, password_hash = $4, first_name = $5,
			last_name = $6, national_id = $7, birth_date = $8, hire_date = $9, phone = $10,
			personal_email = $11, email = $12, address = $13, commission_rate = $14, salary = $15,
			status = $16, role = $17, updated_at = $18
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		a.ID, nullable(a.CompanyID), a.Username, a.PasswordHash, a.FirstName, a.LastName, a.NationalID,
		a.BirthDate, a.HireDate, a.Phone, a.PersonalEmail, a.Email, a.Address, a.CommissionRate, a.Salary,
		string(a.Status), string(a.Role), a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update agent", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un agente por ID.
func (r *AgentRepo) GetByID(ctx context.Context, id string) (*entity.Agent, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.getOne(ctx, "get agent by id", `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
}

// GetByUsername obtiene un agente por username exacto.
func (r *AgentRepo) GetByUsername(ctx context.Context, username string) (*entity.Agent, error) {
	return r.getOne(ctx, "get agent by username", `SELECT `+agentColumns+` FROM agents WHERE username = $1`, username)
}

// GetByEmail obtiene un agente por email sin distinguir mayúsculas.
func (r *AgentRepo) GetByEmail(ctx context.Context, email string) (*entity.Agent, error) {
	return r.getOne(ctx, "get agent by email", `SELECT `+agentColumns+` FROM agents WHERE lower(email) = lower($1::text) LIMIT 1`, email)
}

func (r *AgentRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Agent, error) {
	a, err := scanAgent(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// FindDuplicate revisa username, RUT y email en ese orden.
func (r *AgentRepo) FindDuplicate(ctx context.Context, a *entity.Agent, excludeID string) (string, error) {
	query := `
		SELECT CASE
			WHEN username = $1 THEN 'username'
			WHEN $2 <> '' AND national_id = $2 THEN 'rut'
			ELSE 'email'
		END
		FROM agents
		WHERE id::text <> $4
			AND (username = $1 OR ($2 <> '' AND national_id = $2) OR lower(email) = lower($3::text))
		ORDER BY CASE
			WHEN username = $1 THEN 0
			WHEN $2 <> '' AND national_id = $2 THEN 1
			ELSE 2
		END
		LIMIT 1`
	var field string
	err := r.db.QueryRow(ctx, query, a.Username, a.NationalID, a.Email, excludeID).Scan(&field)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("find duplicate agent: %w", err)
	}
	return field, nil
}

// List lista agentes con filtros y total sin paginar.
func (r *AgentRepo) List(ctx context.Context, f repository.AgentFilter) ([]*entity.Agent, int, error) {
	var w where
	if f.CompanyID != "" {
		w.add("company_id::text = ?", f.CompanyID)
	}
	if f.ExcludeUsername != "" {
		w.add("username <> ?", f.ExcludeUsername)
	}
	if f.OnlyID != "" {
		w.add("id::text = ?", f.OnlyID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		w.add("(username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?)", "%"+s+"%")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agents`+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agents: %w", err)
	}

	query, args := page(`SELECT `+agentColumns+` FROM agents`+w.String()+` ORDER BY username`, w.args, f.Limit, f.Offset)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

// agentDest punteros de destino en el orden de agentColumns.
func agentDest(a *entity.Agent, companyID **string, status, role *string) []any {
	return []any{
		&a.ID, companyID, &a.Username, &a.PasswordHash, &a.FirstName, &a.LastName, &a.NationalID,
		&a.BirthDate, &a.HireDate, &a.Phone, &a.PersonalEmail, &a.Email, &a.Address, &a.CommissionRate, &a.Salary,
		status, role, &a.CreatedAt, &a.UpdatedAt,
	}
}

func finishAgent(a *entity.Agent, companyID *string, status, role string) {
	a.CompanyID = deref(companyID)
	a.Status = entity.AgentStatus(status)
	a.Role = entity.Role(role)
}

func scanAgent(row pgx.Row) (*entity.Agent, error) {
	var a entity.Agent
	var companyID *string
	var status, role string
	if err := row.Scan(agentDest(&a, &companyID, &status, &role)...); err != nil {
		return nil, err
	}
	finishAgent(&a, companyID, status, role)
	return &a, nil
}
