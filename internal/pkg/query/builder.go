package query

import (
	"fmt"
	"sort"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Builder runs select-style queries over an in-memory slice. It provides a
// fluent API for WHERE clauses, ORDER BY, LIMIT and OFFSET. Every method
// returns a new Builder; the source slice is never modified.
type Builder[T any] struct {
	source       []T
	whereClauses []Condition[T]
	orderByName  string
	less         func(a, b T) bool
	orderByDir   Direction
	limitVal     int
	offsetVal    int
}

// From creates a new Builder over items.
func From[T any](items []T) *Builder[T] {
	return &Builder[T]{source: items}
}

// Where adds a condition. Multiple calls are combined with AND logic.
// Nil conditions are ignored so optional filters can be passed through.
func (b *Builder[T]) Where(condition Condition[T]) *Builder[T] {
	if condition == nil {
		return b
	}
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// OrderBy sorts results with less. The sort is stable, so records that
// compare equal keep their input order.
func (b *Builder[T]) OrderBy(name string, less func(a, b T) bool, direction Direction) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.orderByName = name
	newBuilder.less = less
	newBuilder.orderByDir = direction
	return newBuilder
}

// Limit sets the maximum number of records to return. Zero means unlimited.
func (b *Builder[T]) Limit(limit int) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Offset sets the number of matching records to skip.
func (b *Builder[T]) Offset(offset int) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.offsetVal = offset
	return newBuilder
}

// List evaluates the query and returns the matching records in a new slice.
// The result is never nil.
func (b *Builder[T]) List() []T {
	out := make([]T, 0, len(b.source))
	for _, item := range b.source {
		if b.matches(item) {
			out = append(out, item)
		}
	}

	if b.less != nil {
		less := b.less
		if b.orderByDir == Desc {
			less = func(x, y T) bool { return b.less(y, x) }
		}
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}

	if b.offsetVal > 0 {
		if b.offsetVal >= len(out) {
			return out[:0]
		}
		out = out[b.offsetVal:]
	}
	if b.limitVal > 0 && b.limitVal < len(out) {
		out = out[:b.limitVal]
	}
	return out
}

// Count returns the number of matching records, ignoring LIMIT and OFFSET.
func (b *Builder[T]) Count() int {
	n := 0
	for _, item := range b.source {
		if b.matches(item) {
			n++
		}
	}
	return n
}

func (b *Builder[T]) matches(item T) bool {
	for _, cond := range b.whereClauses {
		if !cond.Match(item) {
			return false
		}
	}
	return true
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder[T]) clone() *Builder[T] {
	newBuilder := *b
	newBuilder.whereClauses = make([]Condition[T], len(b.whereClauses))
	copy(newBuilder.whereClauses, b.whereClauses)
	return &newBuilder
}

// String returns a human-readable representation for debugging.
func (b *Builder[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FROM [%d records]", len(b.source))
	if len(b.whereClauses) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(And(b.whereClauses...).String())
	}
	if b.less != nil {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(b.orderByName)
		if b.orderByDir == Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	if b.limitVal > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limitVal)
	}
	if b.offsetVal > 0 {
		fmt.Fprintf(&sb, " OFFSET %d", b.offsetVal)
	}
	return sb.String()
}
