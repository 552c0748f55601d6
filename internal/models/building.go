package models

import (
	"errors"
	"fmt"
)

// ErrInvalidOwnership is returned when an ownership structure breaks the
// kirat invariants. It is only enforced where buildings are written.
var ErrInvalidOwnership = errors.New("invalid ownership structure")

// DefaultTotalKirats is the usual number of kirats a building is divided into.
const DefaultTotalKirats = 24

// Building is the unit of fractional ownership.
type Building struct {
	// ID is the unique identifier for the building (UUID format).
	ID string

	// Name is the display name of the building.
	Name string

	// Address is a free-form postal address.
	Address string

	// TotalKirats is the number of ownership units the building is divided into.
	TotalKirats int

	// OwnerGroups is the ordered list of groups holding kirats in the building.
	OwnerGroups []OwnerGroup

	// CreatedAt is the Unix timestamp when the building was created.
	CreatedAt int64
}

// OwnerGroup is a named collection of members jointly holding kirats.
type OwnerGroup struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Heirs of Ahmed").
	Name string

	// Kirats is the group's allocation out of the building's TotalKirats.
	Kirats int

	// Members is the ordered list of owners inside the group.
	Members []Member
}

// Member is one owner inside an owner group.
type Member struct {
	// Name is the owner's display name.
	Name string

	// Kirats is the member's holding out of the group's Kirats.
	Kirats int

	// UserID links the member to a Person. Empty for placeholder owners.
	UserID string
}

// FindGroup returns the owner group with the given ID.
func (b *Building) FindGroup(groupID string) (*OwnerGroup, bool) {
	for i := range b.OwnerGroups {
		if b.OwnerGroups[i].ID == groupID {
			return &b.OwnerGroups[i], true
		}
	}
	return nil, false
}

// MemberCount is the number of member entries across all groups.
func (b *Building) MemberCount() int {
	n := 0
	for _, g := range b.OwnerGroups {
		n += len(g.Members)
	}
	return n
}

// HasMember reports whether the person appears as a member in any group.
func (b *Building) HasMember(userID string) bool {
	if userID == "" {
		return false
	}
	for _, g := range b.OwnerGroups {
		for _, m := range g.Members {
			if m.UserID == userID {
				return true
			}
		}
	}
	return false
}

// ValidateOwnership checks the kirat invariants of a building:
// group kirats must not exceed TotalKirats and every group's member kirats
// must add up to the group's allocation.
func ValidateOwnership(b *Building) error {
	if b.TotalKirats <= 0 {
		return fmt.Errorf("%w: total kirats must be positive, got %d", ErrInvalidOwnership, b.TotalKirats)
	}

	groupSum := 0
	for _, g := range b.OwnerGroups {
		if g.Kirats < 0 {
			return fmt.Errorf("%w: group %q has negative kirats", ErrInvalidOwnership, g.Name)
		}
		groupSum += g.Kirats

		memberSum := 0
		for _, m := range g.Members {
			if m.Kirats < 0 {
				return fmt.Errorf("%w: member %q of group %q has negative kirats", ErrInvalidOwnership, m.Name, g.Name)
			}
			memberSum += m.Kirats
		}
		if len(g.Members) > 0 && memberSum != g.Kirats {
			return fmt.Errorf("%w: members of group %q hold %d kirats, group holds %d",
				ErrInvalidOwnership, g.Name, memberSum, g.Kirats)
		}
	}

	if groupSum > b.TotalKirats {
		return fmt.Errorf("%w: groups hold %d kirats, building has %d",
			ErrInvalidOwnership, groupSum, b.TotalKirats)
	}

	return nil
}
