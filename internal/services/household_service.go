package services

import (
	"errors"
	"fmt"
	"io"

	"household/internal/core"
	"household/internal/log"
)

// HouseholdService wraps the core model and reports the conditions the
// model only signals through return values: console notices go to out,
// structured records go to the logger.
type HouseholdService struct {
	out    io.Writer
	logger *log.Logger
}

// NewHouseholdService returns a service writing notices to out. Nil
// collaborators are replaced by discarding ones.
func NewHouseholdService(out io.Writer, logger *log.Logger) *HouseholdService {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &HouseholdService{out: out, logger: logger}
}

// Combine applies op to a and b. An invalid operation is reported and
// yields 0.
func (s *HouseholdService) Combine(op core.Operation, a, b core.Money) float64 {
	result, err := a.Combine(op, b)
	if errors.Is(err, core.ErrInvalidOperation) {
		fmt.Fprintln(s.out, "Not a valid operation")
		fields := log.NewFields().
			WithMoney(a.Amount, a.Currency.String()).
			WithOperation(log.OpCombine).
			WithError(err).
			With(log.FieldSelector, string(op)).
			With(log.FieldOther, b.String())
		s.logger.WithComponent(log.ComponentMoney).Warn("Money operation rejected", fields.ToSlice()...)
		return 0
	}
	s.logger.WithComponent(log.ComponentMoney).Debug("Money combined",
		log.FieldOperation, string(op), log.FieldAmount, result, log.FieldCurrency, a.Currency.String())
	return result
}

// NewFamily builds a family, reporting when the composition is rejected.
// The returned family is never nil.
func (s *HouseholdService) NewFamily(members []*core.Person) *core.Family {
	family, err := core.NewFamily(members)
	if err != nil {
		fmt.Fprintln(s.out, "Family is not valid")
		fields := log.NewFields().
			WithOperation(log.OpValidate).
			WithError(err).
			With(log.FieldFamilySize, len(members))
		if len(members) > 0 {
			fields = fields.With(log.FieldFirstAge, members[0].Age)
		}
		s.logger.WithComponent(log.ComponentFamily).Warn("Family composition rejected", fields.ToSlice()...)
		return family
	}
	s.logger.WithComponent(log.ComponentFamily).Debug("Family created",
		log.FieldOperation, log.OpCreate, log.FieldFamilySize, family.Size())
	return family
}

// HaveChild announces the birth and adds the child to the family.
func (s *HouseholdService) HaveChild(family *core.Family, firstName, lastName string) *core.Person {
	fmt.Fprintf(s.out, "%s %s is born! Congrats!\n", firstName, lastName)
	child := family.HaveChild(firstName, lastName)
	s.logger.WithComponent(log.ComponentFamily).Info("Child added to family",
		log.FieldOperation, log.OpBirth, log.FieldMember, child.FullName(), log.FieldFamilySize, family.Size())
	return child
}

// Raise gives job a raise and returns the new salary.
func (s *HouseholdService) Raise(job *core.Job, percent float64) float64 {
	before := job.Salary
	after := job.Raise(percent)
	fields := log.NewFields().
		WithJob(job.Title, after).
		WithOperation(log.OpRaise).
		With(log.FieldPercent, percent).
		With(log.FieldPreviousSalary, before)
	s.logger.WithComponent(log.ComponentJob).Debug("Salary raised", fields.ToSlice()...)
	return after
}

// ParseMoney builds Money from a raw amount and currency code.
func ParseMoney(amount float64, code string) (core.Money, error) {
	currency, err := core.ParseCurrency(code)
	if err != nil {
		return core.Money{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return core.NewMoney(amount, currency), nil
}
