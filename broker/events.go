package broker

// Event subjects published to NATS. Subscribers filter by subject, so the
// names double as routing keys.
const (
	TaskCreated   = "task.created"
	TaskUpdated   = "task.updated"
	TaskDeleted   = "task.deleted"
	TaskCompleted = "task.completed"
	TaskDueSoon   = "task.due_soon"
	TaskOverdue   = "task.overdue"

	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"

	TagCreated    = "tag.created"
	TagUpdated    = "tag.updated"
	TagDeleted    = "tag.deleted"
	TagAssigned   = "tag.assigned"
	TagUnassigned = "tag.unassigned"

	UserCreated = "user.created"
	UserUpdated = "user.updated"
)
