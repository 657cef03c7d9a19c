// Package model defines the typed entities stored by the toado server.
//
// No field is guaranteed present: a select with a partial projection
// leaves unselected fields nil. Absence is a
// representation fact (the column was not projected or failed to decode),
// not a persistence fact. The data layer never fabricates a value for an
// unselected field; display-time placeholders belong to the format
// package.
package model

// Task is one row of the tasks table.
type Task struct {
	// ID is assigned by the store at creation and never client-supplied.
	ID *int64
	// Name of the task.
	Name *string
	// Priority of the task, higher is more important.
	Priority *int64
	// Status is the completion state of the task.
	Status *Status
	// StartTime of the task in ISO 8601 format.
	StartTime *string
	// EndTime of the task in ISO 8601 format.
	EndTime *string
	// Repeat describes whether and how the task repeats.
	Repeat *string
	// Notes holds free-form text for the task.
	Notes *string
	// Projects the task is assigned to. Nil until loaded explicitly via
	// Server.TaskProjects.
	Projects []Project
}
