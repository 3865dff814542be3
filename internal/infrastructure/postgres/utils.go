package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx; los repositorios aceptan cualquiera.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation 23503: el borrado choca con filas que aún referencian al registro.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// writeErr traduce violaciones de integridad a errores de dominio.
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, op)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrHasDependents, op)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// validID descarta identificadores que no son UUID antes de consultar; un id mal formado
// equivale a "no existe".
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// nullable convierte "" en NULL para columnas uuid opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// page aplica LIMIT/OFFSET; limit <= 0 devuelve todo.
func page(query string, args []any, limit, offset int) (string, []any) {
	if limit <= 0 {
		return query, args
	}
	args = append(args, limit, offset)
	return fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)-1, len(args)), args
}

// where acumula condiciones con placeholders numerados.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *where) addRaw(cond string) { w.conds = append(w.conds, cond) }

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// placeholders "$1, $2, ..., $n".
func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// getAttachment lee el comprobante de cualquier tabla con columnas attachment_*.
// table es siempre una constante del paquete.
func getAttachment(ctx context.Context, db Querier, table, id string) (*entity.Attachment, error) {
	if !validID(id) {
		return nil, nil
	}
	var att entity.Attachment
	err := db.QueryRow(ctx,
		`SELECT attachment_name, attachment_size, attachment FROM `+table+` WHERE id = $1`, id,
	).Scan(&att.Name, &att.Size, &att.Content)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s attachment: %w", table, err)
	}
	return &att, nil
}

// deleteByID borra una fila; ErrNotFound si no existía.
func deleteByID(ctx context.Context, db Querier, table, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// setState cambia la columna state de proveedores, contratos o catálogos.
func setState(ctx context.Context, db Querier, table, id string, state entity.Lifecycle) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := db.Exec(ctx, `UPDATE `+table+` SET state = $2, updated_at = now() WHERE id = $1`, id, string(state))
	if err != nil {
		return fmt.Errorf("set %s state: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func replaceFirst(s, old, repl string) string { return strings.Replace(s, old, repl, 1) }
