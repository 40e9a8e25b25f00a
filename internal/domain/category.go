package domain

// ItemCategory is the closed set of catalog categories. The wire values
// match the mobile client's encoding, including CategoryAll which is a
// filter value only and is never stored on an item.
type ItemCategory string

const (
	CategoryAll            ItemCategory = "all"
	CategorySportInventory ItemCategory = "sportInventory"
	CategoryCamping        ItemCategory = "camping"
	CategoryVehicles       ItemCategory = "vehicles"
	CategoryOther          ItemCategory = "other"
)

// ParseCategory maps a wire value to a category. Unknown values report ok
// = false so callers can decide between rejecting and defaulting.
func ParseCategory(s string) (ItemCategory, bool) {
	switch ItemCategory(s) {
	case CategoryAll, CategorySportInventory, CategoryCamping, CategoryVehicles, CategoryOther:
		return ItemCategory(s), true
	default:
		return CategoryOther, false
	}
}

// Title returns the display name shown in the client.
func (c ItemCategory) Title() string {
	switch c {
	case CategorySportInventory:
		return "Sport Inventory"
	case CategoryCamping:
		return "Camping"
	case CategoryVehicles:
		return "Vehicles"
	case CategoryOther:
		return "Other"
	default:
		return ""
	}
}
