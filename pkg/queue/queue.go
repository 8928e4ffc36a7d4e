package queue

// Queue represents a basic bounded queue.
type Queue interface {
	Enqueue(item interface{}) error
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue() error
}
