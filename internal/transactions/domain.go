package transactions

// Kind is the direction of a transaction.
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Transaction represents a ledger entry owned by a session.
// Amount is signed: positive for credits, negative for debits.
type Transaction struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Type      Kind    `json:"type"`
	SessionID string  `json:"session_id" gorm:"column:session_id;index"`
}

// TableName binds Transaction to the transactions table for gorm.
func (Transaction) TableName() string {
	return "transactions"
}

// Summary is the aggregate of every signed amount in a session.
type Summary struct {
	Amount float64 `json:"amount"`
}

// CreateInput carries the user supplied fields of a new transaction.
// Amount is the unsigned magnitude; the sign is derived from Type.
type CreateInput struct {
	Title  string
	Amount float64
	Type   Kind
}
