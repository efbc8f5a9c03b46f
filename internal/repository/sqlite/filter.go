package sqlite

import "strings"

// conditions accumulates WHERE clauses together with their bound arguments so
// filter values always travel as parameters and are never spliced into the
// statement text.
type conditions struct {
	clauses []string
	args    []any
}

func (c *conditions) and(clause string, args ...any) {
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// andIn appends "expr IN (?, ...)" for a non-empty value set. An empty set
// adds no clause.
func (c *conditions) andIn(expr string, values []string) {
	if len(values) == 0 {
		return
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	c.clauses = append(c.clauses, expr+" IN ("+placeholders+")")
	for _, v := range values {
		c.args = append(c.args, v)
	}
}

// where renders the accumulated clauses as a fragment anchored on "WHERE 1=1"
// so the statement stays valid when no filter is set.
func (c *conditions) where() string {
	var b strings.Builder
	b.WriteString("WHERE 1=1")
	for _, clause := range c.clauses {
		b.WriteString(" AND ")
		b.WriteString(clause)
	}
	return b.String()
}
