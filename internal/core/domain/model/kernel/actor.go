package kernel

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when validating a zero-value Actor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("actor must be created via NewActor")

// Actor is the authenticated identity performing an operation, as issued by
// the authentication collaborator. Whether an actor acts as seller or buyer is
// decided per order by comparing identifiers; Role is informational and is
// copied into provenance records.
type Actor struct { //nolint:recvcheck //using for validation
	id    UUID
	name  string
	role  string
	guard guard.ConstructorGuard
}

// NewActor validates the identifier and requires a role. The name may be empty.
func NewActor(id UUID, name, role string) (Actor, error) {
	role = strings.TrimSpace(role)

	var roleErr error
	if role == "" {
		roleErr = errs.NewValueIsRequiredError("role")
	}

	if err := errors.Join(id.Validate(), roleErr); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		name:  strings.TrimSpace(name),
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Name() string {
	return a.name
}

func (a Actor) Role() string {
	return a.role
}

// Is reports whether the actor has the given identifier.
func (a Actor) Is(id UUID) bool {
	return a.id.IsEqual(id)
}
