package traceability

import (
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Location is where a provenance event happened. Both parts are free text.
type Location struct {
	name    string
	address string
}

// NewLocation requires a name; the address may be empty.
func NewLocation(name, address string) (Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Location{}, errs.NewValueIsRequiredError("location name")
	}
	return Location{name: name, address: strings.TrimSpace(address)}, nil
}

// LocationFromAddress names the location after the city and renders the rest
// of the address as "street, state, country". Empty components are kept so
// the rendering stays positional.
func LocationFromAddress(a kernel.Address) Location {
	return Location{
		name:    a.City(),
		address: fmt.Sprintf("%s, %s, %s", a.Street(), a.State(), a.Country()),
	}
}

func (l Location) Name() string {
	return l.name
}

func (l Location) Address() string {
	return l.address
}
