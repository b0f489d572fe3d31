package queue

// Meta includes all of the information we have about a dequeued task.
type Meta struct {
	// ID is the id given when the task was enqueued
	ID string

	// Payload as given to Enqueue
	Payload []byte

	// Retried is the number of times this task has previously failed
	Retried int
}
