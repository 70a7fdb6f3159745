package stats

import "sort"

// TopK counts occurrences of each tag and returns the k most frequent
// labels, most frequent first. Ties keep the order produced by the
// counting pass; callers must not rely on a specific tie order.
func TopK[T comparable](tags []T, k int) []T {
	if len(tags) == 0 || k <= 0 {
		return nil
	}

	counts := make(map[T]int)
	var order []T
	for _, tag := range tags {
		if _, seen := counts[tag]; !seen {
			order = append(order, tag)
		}
		counts[tag]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > k {
		order = order[:k]
	}
	return order
}
