package analytics

import (
	"sort"
	"strings"
)

// Group is an aggregated slice of a frame keyed by one dimension value.
type Group struct {
	Key   string
	Label string
	Value float64
	Count int
	Frame *Frame
}

// GroupBy splits the frame by a dimension in first-seen order. Each group's
// sub-frame shares the backing observations.
func (f *Frame) GroupBy(dim string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < f.Len(); i++ {
		key := f.Dim(i, dim)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		backing := i
		if f.indices != nil {
			backing = f.indices[i]
		}
		grouped[key] = append(grouped[key], backing)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			Frame: f.subFrame(grouped[key]),
		})
	}
	return groups
}

// GroupAndAggregate runs the group, aggregate, sort, limit pipeline over one
// dimension. A limit of 0 keeps all groups.
func (f *Frame) GroupAndAggregate(dim, value string, agg Agg, sortBy string, limit int) []Group {
	if f.Len() == 0 {
		return nil
	}

	groups := f.GroupBy(dim)
	for i := range groups {
		groups[i].Count = groups[i].Frame.Len()
		groups[i].Value = groups[i].Frame.Aggregate(value, agg)
	}

	SortGroups(groups, sortBy)

	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	return groups
}

// SortGroups sorts aggregated groups in place by the named sort mode.
// Unknown modes preserve grouping order.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "label_asc":
		sort.SliceStable(groups, func(i, j int) bool {
			return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key)
		})
	case "label_desc":
		sort.SliceStable(groups, func(i, j int) bool {
			return strings.ToLower(groups[i].Key) > strings.ToLower(groups[j].Key)
		})
	}
}
