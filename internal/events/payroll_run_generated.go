package events

import "time"

const PayrollRunGeneratedTopic = "school.payroll.run.generated.v1"

type PayrollRunGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	PayrollRunID  string    `json:"payroll_run_id"`
	PeriodLabel   string    `json:"period_label"`
	PayDate       string    `json:"pay_date"`
	EmployeeCount int       `json:"employee_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
