package domain

import "time"

// DefaultCountry — страна по умолчанию для адресов.
const DefaultCountry = "India"

// CustomerProfile — расширение учетной записи адресными данными.
// У пользователя не более одного профиля, создается по требованию.
type CustomerProfile struct {
	ID           int64
	UserID       int64
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewCustomerProfile(userID int64) *CustomerProfile {
	return &CustomerProfile{
		UserID:  userID,
		Country: DefaultCountry,
	}
}
