// Package cql builds Confluence Query Language expressions. Clauses form
// an opaque tree that renders to the query string the search endpoint
// accepts; the rest of the client treats the rendered string as opaque.
package cql

import (
	"fmt"
	"strings"
	"time"
)

// Clause is a node of a CQL expression tree.
type Clause interface {
	String() string
}

// ComparisonOperator represents a CQL comparison operator.
type ComparisonOperator int

const (
	OpEqual ComparisonOperator = iota
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpContains
	OpNotContains
	OpIn
	OpNotIn
)

// String returns the string representation of ComparisonOperator.
func (co ComparisonOperator) String() string {
	switch co {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpContains:
		return "~"
	case OpNotContains:
		return "!~"
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	default:
		return "="
	}
}

// comparison is a single field/operator/value clause.
type comparison struct {
	field string
	op    ComparisonOperator
	value any
}

func (c comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.field, c.op, renderValue(c.value))
}

// renderValue quotes strings and joins lists as ("a", "b").
func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case time.Time:
		return fmt.Sprintf("%q", val.Format("2006-01-02 15:04"))
	case []string:
		quoted := make([]string, len(val))
		for i, item := range val {
			quoted[i] = fmt.Sprintf("%q", item)
		}
		return "(" + strings.Join(quoted, ", ") + ")"
	default:
		return fmt.Sprint(val)
	}
}

// Compare builds a clause for an arbitrary field.
func Compare(field string, op ComparisonOperator, value any) Clause {
	return comparison{field: field, op: op, value: value}
}

// binary joins clauses with and/or, parenthesizing each operand.
type binary struct {
	op      string
	clauses []Clause
}

func (b binary) String() string {
	if len(b.clauses) == 1 {
		return b.clauses[0].String()
	}
	parts := make([]string, len(b.clauses))
	for i, clause := range b.clauses {
		parts[i] = "(" + clause.String() + ")"
	}
	return strings.Join(parts, " "+b.op+" ")
}

// And joins clauses with the and operator.
func And(clauses ...Clause) Clause { return binary{op: "and", clauses: clauses} }

// Or joins clauses with the or operator.
func Or(clauses ...Clause) Clause { return binary{op: "or", clauses: clauses} }

// not negates a clause.
type not struct {
	clause Clause
}

func (n not) String() string { return "not (" + n.clause.String() + ")" }

// Not negates a clause.
func Not(clause Clause) Clause { return not{clause: clause} }

// Raw wraps an already-rendered CQL fragment.
type Raw string

func (r Raw) String() string { return string(r) }

// --- Field helpers ---

// Space matches content in a space.
func Space(key string) Clause { return Compare("space", OpEqual, key) }

// Type matches a content type (page, blogpost, attachment, comment).
func Type(contentType string) Clause { return Compare("type", OpEqual, contentType) }

// Title matches an exact title.
func Title(title string) Clause { return Compare("title", OpEqual, title) }

// Text fuzzily matches the content text.
func Text(text string) Clause { return Compare("text", OpContains, text) }

// Label matches content carrying a label.
func Label(label string) Clause { return Compare("label", OpEqual, label) }

// Creator matches content created by an account id.
func Creator(accountID string) Clause { return Compare("creator", OpEqual, accountID) }

// ID matches content by id.
func ID(contentID int64) Clause { return Compare("id", OpEqual, contentID) }

// --- Ordering ---

// Direction orders query results.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Ordering is a single order-by term.
type Ordering struct {
	Field     string
	Direction Direction
}

// Query is a clause with optional order-by terms. It renders to the full
// expression handed to the search endpoint.
type Query struct {
	Clause  Clause
	OrderBy []Ordering
}

func (q Query) String() string {
	var sb strings.Builder
	if q.Clause != nil {
		sb.WriteString(q.Clause.String())
	}
	for i, ordering := range q.OrderBy {
		if i == 0 {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString("order by ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(ordering.Field)
		if ordering.Direction != "" {
			sb.WriteString(" ")
			sb.WriteString(string(ordering.Direction))
		}
	}
	return sb.String()
}
