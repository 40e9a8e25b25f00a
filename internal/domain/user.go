package domain

import "time"

// User mirrors one identity-provider account. UserID equals the provider
// uid and doubles as the document key; it is immutable after creation.
// Items is an embedded list kept for client compatibility and is not read
// by the rental lifecycle.
type User struct {
	UserID      string     `json:"user_id" firestore:"user_id"`
	FirstName   string     `json:"first_name" firestore:"first_name"`
	LastName    string     `json:"last_name" firestore:"last_name"`
	IsAdmin     bool       `json:"is_admin" firestore:"is_admin"`
	Email       string     `json:"email,omitempty" firestore:"email,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty" firestore:"photo_url,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty" firestore:"date_created,omitempty"`
	IsPremium   *bool      `json:"is_premium,omitempty" firestore:"is_premium,omitempty"`
	Items       []Item     `json:"items,omitempty" firestore:"items,omitempty"`
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
