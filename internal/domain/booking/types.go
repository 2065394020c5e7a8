package booking

// Status is the stored lifecycle state. Only the cancel transition exists;
// everything else about a booking's state is derived at read time.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled:
		return true
	default:
		return false
	}
}

// DisplayStatus is what a reader sees: derived from the stored status and
// the current time, never persisted, so it can't go stale.
type DisplayStatus string

const (
	DisplayConfirmed DisplayStatus = "confirmed"
	DisplayFinished  DisplayStatus = "finished"
	DisplayCancelled DisplayStatus = "cancelled"
)

func (s DisplayStatus) String() string {
	return string(s)
}
