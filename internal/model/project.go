package model

// Project is one row of the projects table.
type Project struct {
	// ID is assigned by the store at creation and never client-supplied.
	ID *int64
	// Name of the project.
	Name *string
	// StartTime of the project in ISO 8601 format.
	StartTime *string
	// EndTime of the project in ISO 8601 format.
	EndTime *string
	// Notes holds free-form text for the project.
	Notes *string
	// Tasks assigned to the project. Nil until loaded explicitly via
	// Server.ProjectTasks.
	Tasks []Task
}

// Assignment is a pure join fact linking one task to one project. It has
// no independent identity; the row id of the join table is never exposed.
type Assignment struct {
	TaskID    int64
	ProjectID int64
}
