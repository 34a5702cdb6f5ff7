package types

import "sort"

// DiurnalCycle is the result of averaging a dataset by approximate local
// time of day. Keys are sorted ascending; Means and Counts are aligned with
// Keys per variable. A key whose samples were all NaN keeps a NaN mean and
// a zero count.
type DiurnalCycle struct {
	Keys   []SecondOfDay
	Means  map[VarName][]float64
	Counts map[VarName][]int
}

// VarNames returns the cycle's variable names in sorted order.
func (c DiurnalCycle) VarNames() []VarName {
	names := make([]VarName, 0, len(c.Means))
	for name := range c.Means {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
