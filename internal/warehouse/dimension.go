// Package warehouse assembles the star schema: it merges normalized
// entities from every source into deduplicated dimension tables, resolves
// fact foreign keys, and persists the result.
package warehouse

import (
	"errors"
	"sort"

	"salesdw/internal/models"
)

// ErrNoDimensionRows is returned when every source contributed zero rows
// for an entity type. Nothing downstream can proceed without at least one
// populated dimension, so this aborts the build.
var ErrNoDimensionRows = errors.New("no rows available to build dimension")

// SourcePriority maps source tags to merge precedence. When two sources
// collide on a match key, the higher-ranked source's attributes survive.
type SourcePriority map[string]int

// PriorityFromOrder builds a SourcePriority from a list of source tags
// ordered lowest to highest precedence.
func PriorityFromOrder(order []string) SourcePriority {
	p := make(SourcePriority, len(order))
	for i, tag := range order {
		p[tag] = i + 1
	}

	return p
}

// dimKey exposes the fields the merge needs from an entity.
type dimKey struct {
	matchKey  string
	naturalID string
	source    string
}

// buildDimension implements the cross-source merge shared by the customer
// and employee dimensions:
//
//   - concatenate all sources' entities (caller supplies them concatenated)
//   - stable-sort by match key ascending, then source priority descending,
//     so the highest-priority source sorts first within each match key
//   - keep the first entity per match key and assign dense 1-based surrogate
//     keys in the post-sort order
//   - map every pre-dedup natural id, winner or loser, to the surviving
//     surrogate key for its match key
//
// The result is deterministic for a given input order: same inputs, same
// keys, byte-identical rebuilds.
func buildDimension[T any](entities []T, pri SourcePriority, key func(T) dimKey) ([]T, map[string]int, error) {
	if len(entities) == 0 {
		return nil, nil, ErrNoDimensionRows
	}

	sorted := make([]T, len(entities))
	copy(sorted, entities)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := key(sorted[i]), key(sorted[j])
		if ki.matchKey != kj.matchKey {
			return ki.matchKey < kj.matchKey
		}

		return pri[ki.source] > pri[kj.source]
	})

	var winners []T

	surrogateByMatch := make(map[string]int)

	for _, e := range sorted {
		mk := key(e).matchKey
		if _, taken := surrogateByMatch[mk]; taken {
			continue
		}

		winners = append(winners, e)
		surrogateByMatch[mk] = len(winners)
	}

	// Losing rows keep their identity: every source's natural id resolves to
	// the surviving row for its match key.
	keyByNaturalID := make(map[string]int, len(entities))

	for _, e := range entities {
		k := key(e)
		if k.naturalID == "" {
			continue
		}

		keyByNaturalID[k.naturalID] = surrogateByMatch[k.matchKey]
	}

	return winners, keyByNaturalID, nil
}

// BuildCustomerDim merges customers from every source into one deduplicated
// dimension. It returns the dimension rows in surrogate-key order and the
// natural-id lookup map handed to the fact builder.
func BuildCustomerDim(customers []models.Customer, pri SourcePriority) ([]models.DimCustomer, map[string]int, error) {
	winners, keyMap, err := buildDimension(customers, pri, func(c models.Customer) dimKey {
		return dimKey{matchKey: c.MatchKey, naturalID: c.ID, source: c.Source}
	})
	if err != nil {
		return nil, nil, err
	}

	dim := make([]models.DimCustomer, len(winners))
	for i, c := range winners {
		dim[i] = models.DimCustomer{Key: i + 1, Customer: c}
	}

	return dim, keyMap, nil
}

// BuildEmployeeDim merges employees from every source into one deduplicated
// dimension.
func BuildEmployeeDim(employees []models.Employee, pri SourcePriority) ([]models.DimEmployee, map[string]int, error) {
	winners, keyMap, err := buildDimension(employees, pri, func(e models.Employee) dimKey {
		return dimKey{matchKey: e.MatchKey, naturalID: e.ID, source: e.Source}
	})
	if err != nil {
		return nil, nil, err
	}

	dim := make([]models.DimEmployee, len(winners))
	for i, e := range winners {
		dim[i] = models.DimEmployee{Key: i + 1, Employee: e}
	}

	return dim, keyMap, nil
}
