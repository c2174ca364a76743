package postgres

import (
	"fmt"
	"strings"
)

// patchBuilder assembles a single parameterized UPDATE statement from the
// fields a caller actually supplied. Repositories add columns in the
// entity's fixed allowlist order, never in request-body order, so the
// generated SQL and placeholder numbering are stable. Column names are
// always repository-owned literals; caller input only ever flows into the
// argument list.
type patchBuilder struct {
	sets []string
	args []any
}

// Set appends one column assignment. The value becomes the next positional
// argument.
func (b *patchBuilder) Set(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

// Empty reports whether no column was added. Callers must fail with
// repository.ErrEmptyPatch before touching the store.
func (b *patchBuilder) Empty() bool { return len(b.sets) == 0 }

// where is an equality condition appended to the statement's WHERE clause.
type where struct {
	col string
	val any
}

// SQL compiles the statement. Conditions are ANDed in the order given; the
// first is expected to be the primary key so zero rows affected can be read
// as "no such row".
func (b *patchBuilder) SQL(table, returning string, conds ...where) (string, []any) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(b.sets, ", "))
	for i, c := range conds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		b.args = append(b.args, c.val)
		fmt.Fprintf(&sb, "%s = $%d", c.col, len(b.args))
	}
	if returning != "" {
		sb.WriteString(" RETURNING ")
		sb.WriteString(returning)
	}
	return sb.String(), b.args
}
