package domain

import "time"

type ItemState string

const (
	ItemStateAvailable ItemState = "available"
	ItemStateRented    ItemState = "rented"
)

// Item is a rentable asset. The rent fields (RentedByUserID, OrderID,
// HoursInRent, DateRent, DateReturn) are jointly present exactly when
// State is "rented"; the document/column keys are fixed for wire
// compatibility with the mobile client.
type Item struct {
	ID             string       `json:"id" firestore:"-"`
	Name           string       `json:"name" firestore:"name"`
	PricePerHour   int          `json:"price_per_hour" firestore:"price_per_hour"`
	State          ItemState    `json:"state" firestore:"state"`
	DateRegistered time.Time    `json:"date_registrated" firestore:"date_registrated"`
	RentedByUserID string       `json:"rented_by_user_with_id,omitempty" firestore:"rented_by_user_with_id,omitempty"`
	OrderID        string       `json:"order_id,omitempty" firestore:"order_id,omitempty"`
	HoursInRent    int          `json:"hours_in_rent,omitempty" firestore:"hours_in_rent,omitempty"`
	DateRent       *time.Time   `json:"date_rent,omitempty" firestore:"date_rent,omitempty"`
	DateReturn     *time.Time   `json:"date_return,omitempty" firestore:"date_return,omitempty"`
	Category       ItemCategory `json:"category,omitempty" firestore:"category,omitempty"`
	ImageURL       string       `json:"image_url_string,omitempty" firestore:"image_url_string,omitempty"`
}

// PriceForRent is the running price of the current rent, zero when the
// item is not rented.
func (i *Item) PriceForRent() int {
	return i.PricePerHour * i.HoursInRent
}
