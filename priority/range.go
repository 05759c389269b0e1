package priority

import "fmt"

// Range is an inclusive band of nice values
type Range struct {
	Min int
	Max int
}

// DefaultRange is the band Linux and the BSDs accept
var DefaultRange = Range{Min: MinNice, Max: MaxNice}

// Contains reports whether prio lies inside r
func (r Range) Contains(prio int) bool {
	return prio >= r.Min && prio <= r.Max
}

// Clamp returns prio limited to r
func (r Range) Clamp(prio int) int {
	return min(max(prio, r.Min), r.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
