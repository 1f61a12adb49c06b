package player

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

type Selectable interface {
	Selector() string
}

// selector lays out a numbered list of choices in columns.
type selector[T Selectable] struct {
	options []option[T]
	output  []string
}

type option[T Selectable] struct {
	id  storage.Identifier
	val T
}

func (o option[T]) label() string {
	if l := o.val.Selector(); l != "" {
		return l
	}
	return o.id.String()
}

func newSelector[T Selectable](v map[storage.Identifier]T) *selector[T] {
	s := &selector[T]{}

	for _, id := range slices.Sorted(maps.Keys(v)) {
		s.options = append(s.options, option[T]{id: id, val: v[id]})
	}
	s.build()

	return s
}

// Rows returns the laid out choices.
func (s *selector[T]) Rows() []string {
	return s.output
}

// Select returns the id of the 1-based choice i, or "" if there is none.
func (s *selector[T]) Select(i int) storage.Identifier {
	if i < 1 || i > len(s.options) {
		return ""
	}
	return s.options[i-1].id
}

func (s *selector[T]) build() {
	// Calculate column width
	colWidth := 1
	for _, o := range s.options {
		l := len(o.label()) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Fill columns first, left to right, using more rows than the default
	// if there isn't enough space.
	numVals := len(s.options)
	numCols := max(defaultSelectorRowLength/colWidth, 1)
	numRows := max((numVals+numCols-1)/numCols, min(numVals, defaultSelectorRowCount))

	rows := make([]string, numRows)
	for i, o := range s.options {
		rows[i%numRows] += fmt.Sprintf("%2d. %-*s  ", i+1, colWidth-5, o.label())
	}

	s.output = make([]string, 0, numRows)
	for _, r := range rows {
		if r = strings.TrimRight(r, " "); r != "" {
			s.output = append(s.output, r)
		}
	}
}
