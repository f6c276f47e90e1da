package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/adam-drag/stock-mate/internal/application/query"
	"github.com/adam-drag/stock-mate/internal/domain"
)

var _ query.SelectExecutor = (*SelectExecutor)(nil)

// SelectExecutor ejecuta consultas de solo lectura y materializa las filas
// como mapas columna -> valor. Rechaza cualquier sentencia que no sea SELECT.
type SelectExecutor struct {
	q Querier
}

// NewSelectExecutor construye el ejecutor de lectura.
func NewSelectExecutor(q Querier) *SelectExecutor {
	return &SelectExecutor{q: q}
}

// ExecuteSelect valida que la sentencia sea un SELECT y la ejecuta.
func (e *SelectExecutor) ExecuteSelect(ctx context.Context, sql string, args []any) ([]map[string]any, error) {
	if !isSelect(sql) {
		return nil, domain.ErrQueryNotAllowed
	}

	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("execute select: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	results := make([]map[string]any, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return results, nil
}

func isSelect(sql string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(sql)), "SELECT")
}
