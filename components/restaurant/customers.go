package restaurant

import (
	"slices"
	"strings"
)

// ItemCount is how often an item appears in a customer's history.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// FavoriteItems counts the lines of c's order history by item name, with the
// "(xN)" quantity suffix stripped. Higher counts come first; ties keep first
// appearance order.
func FavoriteItems(c Customer) []ItemCount {
	index := map[string]int{}
	var out []ItemCount
	for _, order := range c.History {
		for _, line := range order.Items {
			name := itemName(line)
			if pos, ok := index[name]; ok {
				out[pos].Count++
				continue
			}
			index[name] = len(out)
			out = append(out, ItemCount{Item: name, Count: 1})
		}
	}
	slices.SortStableFunc(out, func(a, b ItemCount) int { return b.Count - a.Count })
	return out
}

func itemName(line string) string {
	if idx := strings.Index(line, " (x"); idx >= 0 {
		return line[:idx]
	}
	return line
}

// CustomerDetail is the customer modal payload.
type CustomerDetail struct {
	Customer  Customer    `json:"customer"`
	Favorites []ItemCount `json:"favorites"`
}
