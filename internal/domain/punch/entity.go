package punch

import "time"

// Kind is the type of a raw attendance event.
type Kind string

const (
	KindIn     Kind = "in"
	KindOut    Kind = "out"
	KindBreak  Kind = "break"
	KindResume Kind = "resume"
)

var KindValues = []string{
	string(KindIn),
	string(KindOut),
	string(KindBreak),
	string(KindResume),
}

// Event is one timestamped punch. The ledger enforces no ordering or pairing
// invariant; consumers must tolerate orphan and duplicate events.
type Event struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	Timestamp   time.Time // UTC, pre-normalized to the employee's local day
	Kind        Kind
	BreakTypeID *string // set only for break events
	CreatedAt   time.Time
}
