package domain

import "time"

type RentState string

const (
	RentStateInUse    RentState = "in_use"
	RentStateFinished RentState = "finished"
)

// Rent records one rental period for one item. Its ID equals the order id
// written on the item when the rent started. TotalPrice is the price
// snapshot taken at creation (price_per_hour × hours_in_rent);
// AdditionalFee is a separate adjustment and is never folded into it.
// Rents are never deleted.
type Rent struct {
	ID                 string     `json:"id" firestore:"-"`
	State              RentState  `json:"state" firestore:"state"`
	UserID             string     `json:"user_id" firestore:"user_id"`
	ItemID             string     `json:"item_id" firestore:"item_id"`
	ItemName           string     `json:"item_name" firestore:"item_name"`
	RentDate           time.Time  `json:"rent_date" firestore:"rent_date"`
	DeadlineReturnDate time.Time  `json:"deadline_return_date" firestore:"deadline_return_date"`
	ActualReturnDate   *time.Time `json:"actual_return_date,omitempty" firestore:"actual_return_date,omitempty"`
	HoursInRent        int        `json:"hours_in_rent" firestore:"hours_in_rent"`
	PricePerHour       int        `json:"price_per_hour" firestore:"price_per_hour"`
	TotalPrice         int        `json:"total_price" firestore:"total_price"`
	AdditionalFee      *int       `json:"additional_fee,omitempty" firestore:"additional_fee,omitempty"`
}
