package query

import (
	"fmt"
	"strings"
)

// Condition is a WHERE-style predicate over in-memory records of type T.
type Condition[T any] interface {
	// Match reports whether the record satisfies the condition.
	Match(record T) bool
	// String describes the condition, e.g. `brand_id = "1"`.
	String() string
}

// eqCondition implements equality comparison (field = value).
type eqCondition[T any, V comparable] struct {
	field string
	get   func(T) V
	value V
}

// Eq creates a condition that matches when get(record) == value.
// Example: Eq("brand_id", func(p Program) string { return p.BrandID }, "1")
func Eq[T any, V comparable](field string, get func(T) V, value V) Condition[T] {
	return &eqCondition[T, V]{field: field, get: get, value: value}
}

func (c *eqCondition[T, V]) Match(record T) bool {
	return c.get(record) == c.value
}

func (c *eqCondition[T, V]) String() string {
	return fmt.Sprintf("%s = %q", c.field, fmt.Sprint(c.value))
}

// containsFoldCondition implements case-insensitive substring matching.
type containsFoldCondition[T any] struct {
	field  string
	get    func(T) string
	needle string
}

// ContainsFold creates a condition that matches when get(record) contains
// needle, ignoring case. An empty needle matches every record.
func ContainsFold[T any](field string, get func(T) string, needle string) Condition[T] {
	return &containsFoldCondition[T]{field: field, get: get, needle: strings.ToLower(needle)}
}

func (c *containsFoldCondition[T]) Match(record T) bool {
	return strings.Contains(strings.ToLower(c.get(record)), c.needle)
}

func (c *containsFoldCondition[T]) String() string {
	return fmt.Sprintf("lower(%s) LIKE %q", c.field, "%"+c.needle+"%")
}

// funcCondition adapts an arbitrary predicate.
type funcCondition[T any] struct {
	name string
	fn   func(T) bool
}

// Func wraps fn as a named condition.
func Func[T any](name string, fn func(T) bool) Condition[T] {
	return &funcCondition[T]{name: name, fn: fn}
}

func (c *funcCondition[T]) Match(record T) bool { return c.fn(record) }
func (c *funcCondition[T]) String() string      { return c.name }

// andCondition matches when every child matches.
type andCondition[T any] struct {
	conds []Condition[T]
}

// And combines conditions with logical AND. With no arguments it matches
// everything.
func And[T any](conds ...Condition[T]) Condition[T] {
	return &andCondition[T]{conds: conds}
}

func (c *andCondition[T]) Match(record T) bool {
	for _, cond := range c.conds {
		if !cond.Match(record) {
			return false
		}
	}
	return true
}

func (c *andCondition[T]) String() string {
	if len(c.conds) == 0 {
		return "TRUE"
	}
	parts := make([]string, 0, len(c.conds))
	for _, cond := range c.conds {
		parts = append(parts, cond.String())
	}
	return strings.Join(parts, " AND ")
}
