package tabular

// Indicator is the sort affordance rendered next to a column header.
type Indicator string

const (
	Unsorted   Indicator = "unsorted"
	SortedUp   Indicator = "sort-up"
	SortedDown Indicator = "sort-down"
)

// NextDirection returns the direction a click on key should apply: the same
// key flips from Ascending to Descending, anything else starts at Ascending.
func NextDirection(current *SortRule, key string) Direction {
	if current != nil && current.Key == key && current.Direction == Ascending {
		return Descending
	}
	return Ascending
}

// Toggle returns the sort rule that results from selecting key.
func Toggle(current *SortRule, key string) SortRule {
	return SortRule{Key: key, Direction: NextDirection(current, key)}
}

// IndicatorFor reports how key is currently sorted.
func IndicatorFor(current *SortRule, key string) Indicator {
	if current == nil || current.Key != key {
		return Unsorted
	}
	if current.Direction == Descending {
		return SortedDown
	}
	return SortedUp
}
