// Equality Atlas - Gender Equality Statistics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/equalityatlas

package query

import (
	"strconv"
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with numbered placeholders.
type WhereBuilder struct {
	clauses []string
	args    []any
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// Bind appends an argument and returns its placeholder. Use it for arguments
// outside the WHERE clause, such as LIMIT and OFFSET.
func (wb *WhereBuilder) Bind(v any) string {
	wb.args = append(wb.args, v)
	return "$" + strconv.Itoa(len(wb.args))
}

// AddClause adds a raw condition. Each ? in clause is bound, in order, to the
// matching argument.
func (wb *WhereBuilder) AddClause(clause string, args ...any) *WhereBuilder {
	var sb strings.Builder
	next := 0
	for _, r := range clause {
		if r == '?' && next < len(args) {
			sb.WriteString(wb.Bind(args[next]))
			next++
			continue
		}
		sb.WriteRune(r)
	}
	wb.clauses = append(wb.clauses, sb.String())
	return wb
}

// AddEq adds "column = value" when value is not blank.
func (wb *WhereBuilder) AddEq(column, value string) *WhereBuilder {
	value = strings.TrimSpace(value)
	if value == "" {
		return wb
	}
	return wb.AddClause(column+" = ?", value)
}

// AddIntRange adds inclusive lower and upper bounds; nil bounds are skipped.
func (wb *WhereBuilder) AddIntRange(column string, from, to *int) *WhereBuilder {
	if from != nil {
		wb.AddClause(column+" >= ?", *from)
	}
	if to != nil {
		wb.AddClause(column+" <= ?", *to)
	}
	return wb
}

// AddIn adds "column IN (...)" for a non-empty value list.
func (wb *WhereBuilder) AddIn(column string, values []string) *WhereBuilder {
	if len(values) == 0 {
		return wb
	}
	placeholders := make([]string, len(values))
	for i, v := range values {
		placeholders[i] = wb.Bind(v)
	}
	wb.clauses = append(wb.clauses, column+" IN ("+strings.Join(placeholders, ", ")+")")
	return wb
}

// AddSearch adds a case-insensitive substring match across columns, OR-ed
// together. A blank term is skipped.
func (wb *WhereBuilder) AddSearch(term string, columns ...string) *WhereBuilder {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return wb
	}
	p := wb.Bind("%" + term + "%")
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + p
	}
	wb.clauses = append(wb.clauses, "("+strings.Join(parts, " OR ")+")")
	return wb
}

// Build joins the clauses with AND. It returns "1=1" when no clause was added.
func (wb *WhereBuilder) Build() (string, []any) {
	if len(wb.clauses) == 0 {
		return "1=1", wb.args
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// Args returns every bound argument, including those added with Bind.
func (wb *WhereBuilder) Args() []any {
	return wb.args
}
