package domain

// ItemSort is the closed set of catalog sort keys.
type ItemSort string

const (
	SortByDateNewest ItemSort = "date_desc"
	SortByDateOldest ItemSort = "date_asc"
	SortByNameAsc    ItemSort = "name_asc"
	SortByNameDesc   ItemSort = "name_desc"
	SortByPriceAsc   ItemSort = "price_asc"
	SortByPriceDesc  ItemSort = "price_desc"
)

// ParseItemSort maps a wire value to a sort key, defaulting to
// newest-registered-first.
func ParseItemSort(s string) ItemSort {
	switch ItemSort(s) {
	case SortByDateNewest, SortByDateOldest, SortByNameAsc, SortByNameDesc, SortByPriceAsc, SortByPriceDesc:
		return ItemSort(s)
	default:
		return SortByDateNewest
	}
}
