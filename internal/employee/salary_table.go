package employee

import "github.com/shopspring/decimal"

// Type classifies an employee for payroll purposes. Types outside the
// payroll set (e.g. "other") are kept in the directory but accrue
// nothing.
type Type string

const (
	TypeTeacher        Type = "teacher"
	TypeAdministrative Type = "administrative"
	TypeLaborer        Type = "laborer"
	TypeOther          Type = "other"
)

// baseSalaries is the flat monthly base-salary table keyed by employee
// type. The payroll evaluator and the liquidation calculator both read
// it; keeping it as data rather than branching keeps the rule set
// testable on its own.
var baseSalaries = map[Type]decimal.Decimal{
	TypeTeacher:        decimal.NewFromInt(500),
	TypeAdministrative: decimal.NewFromInt(400),
	TypeLaborer:        decimal.NewFromInt(300),
}

// BaseSalaryFor returns the monthly base salary for a type. Unknown
// types resolve to zero.
func BaseSalaryFor(t Type) decimal.Decimal {
	if salary, ok := baseSalaries[t]; ok {
		return salary
	}
	return decimal.Zero
}

// PayrollTypes lists the types that take part in payroll generation, in
// stable order.
func PayrollTypes() []Type {
	return []Type{TypeTeacher, TypeAdministrative, TypeLaborer}
}

func IsPayrollType(t Type) bool {
	_, ok := baseSalaries[t]
	return ok
}

// ParseType validates a raw string against the known types.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeTeacher, TypeAdministrative, TypeLaborer, TypeOther:
		return Type(s), true
	}
	return "", false
}
