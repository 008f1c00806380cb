package amqp

import (
	"encoding/json"
	"time"

	"budgetplan/internal/core"
)

// Change actions carried by BudgetChangedMessage.
const (
	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// BudgetChangedMessage announces that a month's budget was set or removed.
// Amount is zero for deletions.
type BudgetChangedMessage struct {
	Month     string    `json:"month"`
	Amount    int64     `json:"amount"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBudgetUpsertMessage describes a saved budget.
func NewBudgetUpsertMessage(b core.Budget) *BudgetChangedMessage {
	return &BudgetChangedMessage{
		Month:     b.Month.String(),
		Amount:    b.Amount,
		Action:    ActionUpsert,
		Timestamp: time.Now(),
	}
}

// NewBudgetDeleteMessage describes a removed budget.
func NewBudgetDeleteMessage(month core.YearMonth) *BudgetChangedMessage {
	return &BudgetChangedMessage{
		Month:     month.String(),
		Action:    ActionDelete,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetChangedMessageFromJSON creates a message from JSON bytes
func BudgetChangedMessageFromJSON(data []byte) (*BudgetChangedMessage, error) {
	var msg BudgetChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
