// Package demo runs the fixed demonstration sequence over the household
// model and writes its results, one value per line.
package demo

import (
	"fmt"
	"io"

	"household/internal/core"
	"household/internal/services"
)

// Run writes the demonstration to w. Notices raised by svc (births,
// rejected operations) must be written to the same w to keep the order.
func Run(w io.Writer, svc *services.HouseholdService) {
	runMoney(w, svc)

	developer := core.NewJob("Developer", 30, core.PerHour)
	designer := core.NewJob("Designer", 50000, core.PerYear)
	runJobs(w, svc, developer, designer)

	bob, mary := runPeople(w, developer)
	runFamily(w, svc, bob, mary)
}

func runMoney(w io.Writer, svc *services.HouseholdService) {
	money1 := core.NewMoney(15, core.USD)
	money2 := core.NewMoney(10, core.CAN)
	money3 := core.NewMoney(5, core.GBP)
	money4 := core.NewMoney(12, core.EUR)

	fmt.Fprintln(w, "Money test cases")
	printAmount(w, money1.Convert(core.EUR))
	printAmount(w, money2.Convert(core.GBP))
	printAmount(w, money3.Convert(core.CAN))
	printAmount(w, money4.Convert(core.USD))
	printAmount(w, svc.Combine(core.Add, money1, money2))
	printAmount(w, svc.Combine(core.Subtract, money2, money3))
	printAmount(w, svc.Combine(core.Add, money1, money4))
	printAmount(w, svc.Combine(core.Subtract, money2, money1))
	fmt.Fprintln(w, money1)
	fmt.Fprintln(w, money2)
	fmt.Fprintln(w, money3)
	fmt.Fprintln(w, money4)

	money1.Add(money2)
	fmt.Fprintln(w, money1)

	money4.Subtract(money1)
	fmt.Fprintln(w, money4)

	money2.Add(money3)
	fmt.Fprintln(w, money2)
}

func runJobs(w io.Writer, svc *services.HouseholdService, hourly, yearly *core.Job) {
	fmt.Fprintln(w, "\nJob test cases")
	printAmount(w, hourly.CalculateIncome(core.Hours(200)))
	printAmount(w, svc.Raise(hourly, 15))
	printAmount(w, hourly.CalculateIncome(core.Hours(200)))
	printAmount(w, yearly.CalculateIncome(nil))
	printAmount(w, svc.Raise(yearly, 10))
	printAmount(w, yearly.CalculateIncome(nil))
	fmt.Fprintln(w, hourly)
	fmt.Fprintln(w, yearly)
}

func runPeople(w io.Writer, job *core.Job) (bob, mary *core.Person) {
	fmt.Fprintln(w, "\nPerson test cases")
	bob = core.NewPerson("Bob", "Smith", 45, nil, nil)
	mary = core.NewPerson("Mary", "Smith", 43, job, bob)

	fmt.Fprintln(w, mary.Narrate())
	fmt.Fprintln(w, mary)
	return bob, mary
}

func runFamily(w io.Writer, svc *services.HouseholdService, members ...*core.Person) {
	fmt.Fprintln(w, "\nFamily test cases")
	family := svc.NewFamily(members)

	printAmount(w, family.HouseholdIncome())
	svc.HaveChild(family, "Clyde", "Smith")
	fmt.Fprintln(w, family)
}

func printAmount(w io.Writer, f float64) {
	fmt.Fprintln(w, core.FormatAmount(f))
}
