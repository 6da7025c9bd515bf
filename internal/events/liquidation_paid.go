package events

import "time"

const LiquidationPaidTopic = "school.payroll.liquidation.paid.v1"

type LiquidationPaidEvent struct {
	EventType     string    `json:"event_type"`
	LiquidationID string    `json:"liquidation_id"`
	EmployeeID    string    `json:"employee_id"`
	TotalAmount   string    `json:"total_amount"`
	PaidDate      string    `json:"paid_date"`
	OccurredAt    time.Time `json:"occurred_at"`
}
