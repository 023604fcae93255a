package sorting

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-containers/compare"
)

// Strategy names accepted by New.
const (
	CombSort  = "comb"
	HeapSort  = "heap"
	ShellSort = "shell"
)

// Names lists every registered strategy name.
func Names() []string {
	return []string{CombSort, HeapSort, ShellSort}
}

// New looks up a strategy by name (case-insensitive) and binds it to cmp.
func New[T any](name string, cmp compare.Comparator[T]) (Strategy[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CombSort:
		return NewCombSort(cmp), nil
	case HeapSort:
		return NewHeapSort(cmp), nil
	case ShellSort:
		return NewShellSort(cmp), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
}

// All returns one instance of every strategy, in Names order.
func All[T any](cmp compare.Comparator[T]) []Strategy[T] {
	return []Strategy[T]{NewCombSort(cmp), NewHeapSort(cmp), NewShellSort(cmp)}
}
