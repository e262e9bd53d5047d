package models

import "sort"

// AggregationResult maps every distinct surviving key to its merged Statistics.
type AggregationResult map[GroupKey]Statistics

// SortedKeys returns the keys in GroupKey.Less order.
func (r AggregationResult) SortedKeys() []GroupKey {
	keys := make([]GroupKey, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Equal reports whether both results hold the same keys with equal Statistics.
func (r AggregationResult) Equal(o AggregationResult) bool {
	if len(r) != len(o) {
		return false
	}
	for k, v := range r {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Groups flattens the result into a slice sorted by key.
func (r AggregationResult) Groups() []Group {
	keys := r.SortedKeys()
	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		stats := r[k]
		groups = append(groups, Group{
			ClientAddress: k.ClientAddress,
			ActorID:       k.ActorID,
			QueryID:       k.QueryID,
			Count:         stats.Count,
			TotalBytes:    stats.TotalBytes,
		})
	}
	return groups
}

// NewAggregationResultFromGroups is the inverse of Groups.
func NewAggregationResultFromGroups(groups []Group) AggregationResult {
	result := make(AggregationResult, len(groups))
	for _, g := range groups {
		key := GroupKey{ClientAddress: g.ClientAddress, ActorID: g.ActorID, QueryID: g.QueryID}
		result[key] = result[key].Add(Statistics{Count: g.Count, TotalBytes: g.TotalBytes})
	}
	return result
}
