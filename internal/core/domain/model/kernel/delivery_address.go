package kernel

import "strings"

// DeliveryAddress is where an order is shipped to. Fields are taken as given; an address
// is always replaced as a whole.
type DeliveryAddress struct {
	street     string
	city       string
	postalCode string
	country    string
}

func NewDeliveryAddress(street, city, postalCode, country string) DeliveryAddress {
	return DeliveryAddress{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
	}
}

func (a DeliveryAddress) Street() string {
	return a.street
}

func (a DeliveryAddress) City() string {
	return a.city
}

func (a DeliveryAddress) PostalCode() string {
	return a.postalCode
}

func (a DeliveryAddress) Country() string {
	return a.country
}

// HasCity reports whether the city is present and not blank.
func (a DeliveryAddress) HasCity() bool {
	return strings.TrimSpace(a.city) != ""
}

func (a DeliveryAddress) IsEqual(other DeliveryAddress) bool {
	return a == other
}
