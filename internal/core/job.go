package core

// Job holds compensation terms. A Job may be shared by several people;
// changes such as a raise are seen by all of them.
type Job struct {
	Title     string
	Salary    float64
	Frequency PayFrequency
}

// NewJob returns a Job with the given compensation terms.
func NewJob(title string, salary float64, frequency PayFrequency) *Job {
	return &Job{Title: title, Salary: salary, Frequency: frequency}
}

// CalculateIncome returns the income for the given hours worked.
// Hourly jobs without hours earn 0. Yearly jobs ignore hours.
func (j *Job) CalculateIncome(hoursWorked *float64) float64 {
	if j.Frequency != PerHour {
		return j.Salary
	}
	if hoursWorked == nil {
		return 0
	}
	return j.Salary * *hoursWorked
}

// Raise increases the salary by percent and returns the new salary.
// Negative percentages decrease it.
func (j *Job) Raise(percent float64) float64 {
	j.Salary += float64(j.Salary * (percent / 100))
	return j.Salary
}

// String renders "<title>, <salary> per hour" or "... per year".
func (j *Job) String() string {
	frequency := PerYear
	if j.Frequency == PerHour {
		frequency = PerHour
	}
	return j.Title + ", " + FormatAmount(j.Salary) + " " + string(frequency)
}

// Hours is a convenience for passing a literal to CalculateIncome.
func Hours(h float64) *float64 {
	return &h
}
