package core

import (
	"strconv"
	"strings"
)

const (
	// MinWorkingAge is the youngest age at which a person may hold a job.
	MinWorkingAge = 16
	// MinMarriageAge is the youngest age at which a person may have a spouse.
	MinMarriageAge = 18
)

// Person is a member of a household. Spouse is a plain association:
// setting a.Spouse = b does not set b.Spouse.
type Person struct {
	FirstName string
	LastName  string
	Age       int
	Job       *Job
	Spouse    *Person
}

// NewPerson builds a Person, dropping the job and spouse when the age does
// not allow them. The check only happens here.
func NewPerson(firstName, lastName string, age int, job *Job, spouse *Person) *Person {
	p := &Person{FirstName: firstName, LastName: lastName, Age: age}
	if age < MinWorkingAge {
		return p
	}
	p.Job = job
	if age >= MinMarriageAge {
		p.Spouse = spouse
	}
	return p
}

// FullName returns "<first> <last>".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// String renders "<first> <last>, <age>, <job>, <spouse>" with Jobless and
// Spouseless standing in for missing associations.
func (p *Person) String() string {
	jobName := "Jobless"
	if p.Job != nil {
		jobName = p.Job.Title
	}
	spouseName := "Spouseless"
	if p.Spouse != nil {
		spouseName = p.Spouse.FullName()
	}
	return p.FullName() + ", " + strconv.Itoa(p.Age) + ", " + jobName + ", " + spouseName
}

// Narrate describes p in three sentences, one per line.
func (p *Person) Narrate() string {
	var b strings.Builder
	b.WriteString(p.FullName() + " is " + strconv.Itoa(p.Age) + " years old.\n")
	if p.Job == nil {
		b.WriteString(p.FirstName + " does not have a job.\n")
	} else {
		b.WriteString(p.FirstName + " is a " + p.Job.Title + ".\n")
	}
	if p.Spouse == nil {
		b.WriteString(p.FirstName + " is single.")
	} else {
		b.WriteString(p.FirstName + "'s spouse is " + p.Spouse.FullName() + ".")
	}
	return b.String()
}
