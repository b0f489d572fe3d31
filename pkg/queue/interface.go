package queue

// Queue is a durable work queue used for background retries.
type Queue interface {
	// Register a task handler. This is a function that will be called when a task is dequeued.
	//
	// The handler is passed a slice of Meta; this is to allow for batch processing
	// if the Queue in use supports it (otherwise, you'll always get a single item in the slice).
	//
	// A handler returning an error has the work retried later, up to the queue's max retries.
	Register(task string, handler func(work []*Meta) error) error

	// Run the queue & process tasks (via Register funcs). This should block until Close() is called.
	Run() error

	// Enqueue a task with the given id and payload.
	//
	// The id doubles as an idempotency key; enqueuing the same id twice is not an error and
	// results in one task. Returns the queue's id for the task.
	Enqueue(task, id string, payload []byte) (string, error)

	// Close & shutdown the queue.
	Close() error
}
