package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// UnknownCity is the city of the address substituted when none is known.
const UnknownCity = "Unknown"

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a postal address. Any component may be empty, but at least one
// must be present.
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	state   string
	country string
	guard   guard.ConstructorGuard
}

// NewAddress trims every component. A blank city is kept as is; an address
// with every component blank is rejected.
func NewAddress(street, city, state, country string) (Address, error) {
	a := Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		country: strings.TrimSpace(country),
		guard:   guard.NewConstructorGuard(),
	}
	if a.IsBlank() {
		return Address{}, errs.NewValueIsRequiredError("address")
	}

	return a, nil
}

// UnknownAddress is the placeholder used when an order carries no shipping address.
func UnknownAddress() Address {
	return Address{
		city:  UnknownCity,
		guard: guard.NewConstructorGuard(),
	}
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) Country() string {
	return a.country
}

// IsBlank reports whether every component is empty.
func (a Address) IsBlank() bool {
	return a.street == "" && a.city == "" && a.state == "" && a.country == ""
}

// IsEqual compares all components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.country == other.country
}
