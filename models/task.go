package models

// Task is the single managed entity. IDs are assigned by the service,
// start at 1 and are never reused, even after deletion.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskCreate carries the fields accepted when creating a task.
// Completed defaults to false when omitted from the request body.
type TaskCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskUpdate carries a partial update. A nil field means "leave unchanged";
// a non-nil pointer to an empty string or false is still applied.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}
