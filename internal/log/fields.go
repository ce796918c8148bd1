package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldCurrency   = "currency"
	FieldAmount     = "amount"
	FieldOther      = "other"
	FieldSelector   = "selector"
	FieldMember     = "member"
	FieldFamilySize = "family_size"
	FieldFirstAge   = "first_member_age"
	FieldJobTitle   = "job_title"
	FieldSalary     = "salary"
	FieldPercent    = "percent"
	FieldHours      = "hours"

	FieldPreviousSalary  = "previous_salary"
	FieldTarget          = "target"
	FieldResult          = "result"
	FieldLogLevel        = "log_level"
	FieldDefaultCurrency = "default_currency"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentCLI    = "cli"
	ComponentMoney  = "money"
	ComponentJob    = "job"
	ComponentFamily = "family"
	ComponentDemo   = "demo"
)

// Operations defines standard operation names
const (
	OpConvert  = "convert"
	OpCombine  = "combine"
	OpRaise    = "raise"
	OpIncome   = "income"
	OpCreate   = "create"
	OpBirth    = "birth"
	OpValidate = "validate"
	OpStartup  = "startup"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMoney adds amount and currency fields
func (f LogFields) WithMoney(amount float64, currency string) LogFields {
	f[FieldAmount] = amount
	f[FieldCurrency] = currency
	return f
}

// WithJob adds job-related fields
func (f LogFields) WithJob(title string, salary float64) LogFields {
	f[FieldJobTitle] = title
	f[FieldSalary] = salary
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
