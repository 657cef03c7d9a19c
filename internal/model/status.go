package model

// Status is the completion state of a task, persisted as a small integer
// code in the status column.
type Status int

const (
	StatusIncomplete Status = iota
	StatusComplete
	StatusArchived
)

// StatusFromCode decodes a stored status code. Unrecognized codes decode to
// StatusArchived instead of failing the row.
func StatusFromCode(code int64) Status {
	switch code {
	case 0:
		return StatusIncomplete
	case 1:
		return StatusComplete
	default:
		return StatusArchived
	}
}

// Code returns the integer code stored in the database.
func (s Status) Code() int64 {
	return int64(s)
}

func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	case StatusArchived:
		return "archived"
	default:
		return "unknown"
	}
}
