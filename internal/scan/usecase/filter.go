package usecase

import (
	"scanner-srv/internal/model"
	"scanner-srv/pkg/keyword"
)

// filterItems keeps the items whose text matches at least one campaign
// keyword and records which keywords hit. A campaign with no keywords
// keeps everything it fetched.
func (uc *implUseCase) filterItems(c model.Campaign, items []fetchedItem) []fetchedItem {
	if len(c.Keywords) == 0 {
		return items
	}

	var matched []fetchedItem
	for _, it := range items {
		hits := keyword.Match(it.Text(), c.Keywords)
		if len(hits) == 0 {
			continue
		}
		it.Matched = hits
		matched = append(matched, it)
	}
	return matched
}
