package core

import (
	"slices"
	"strings"
)

// MinHeadOfFamilyAge is the age the first member must exceed for a family
// to be valid.
const MinHeadOfFamilyAge = 21

// Family is an ordered group of people. Member order is insertion order.
type Family struct {
	Members []*Person
}

// NewFamily builds a Family from members. Only the first member's age is
// checked. When the check fails the family is returned empty together
// with ErrInvalidFamily. The family holds its own copy of the slice.
func NewFamily(members []*Person) (*Family, error) {
	if !validComposition(members) {
		return &Family{Members: []*Person{}}, ErrInvalidFamily
	}
	return &Family{Members: slices.Clone(members)}, nil
}

func validComposition(members []*Person) bool {
	// Only members[0] is inspected, on every pass.
	valid := false
	for range members {
		if members[0].Age > MinHeadOfFamilyAge {
			valid = true
		}
	}
	return valid
}

// HouseholdIncome sums the raw salary of every member holding a job.
// Pay frequency is not taken into account.
func (f *Family) HouseholdIncome() float64 {
	var total float64
	for _, m := range f.Members {
		if m.Job != nil {
			total += m.Job.Salary
		}
	}
	return total
}

// HaveChild appends a newborn with the given name and returns it.
func (f *Family) HaveChild(firstName, lastName string) *Person {
	child := NewPerson(firstName, lastName, 0, nil, nil)
	f.Members = append(f.Members, child)
	return child
}

// Size returns the number of members.
func (f *Family) Size() int {
	return len(f.Members)
}

// String lists member names in order after "Family members are:".
func (f *Family) String() string {
	var b strings.Builder
	b.WriteString("Family members are:")
	for _, m := range f.Members {
		b.WriteString(" " + m.FullName())
	}
	return b.String()
}
