package queryir

// Table identifies one of the three fixed storage tables. The set is
// closed: statement builders only ever name these literals, so table names
// never pass through caller input.
type Table int

const (
	Tasks Table = iota
	Projects
	TaskAssignments
)

func (t Table) String() string {
	switch t {
	case Tasks:
		return "tasks"
	case Projects:
		return "projects"
	case TaskAssignments:
		return "task_assignments"
	default:
		return "unknown"
	}
}
