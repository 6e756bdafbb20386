package product

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the availability of a product.
type Status int

const (
	Unknown Status = iota
	Available
	SoldOut
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		SoldOut:   "soldout",
	}
}

// ParseStatus converts the stored name of a status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"product status is invalid",
		fmt.Errorf("%q is not one of available, soldout", s),
	)
}

func (s Status) Validate() error {
	if s != Available && s != SoldOut {
		return errs.NewValueIsInvalidErrorWithCause("product status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
