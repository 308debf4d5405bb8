package domain

// Subscription is a live listener handle owned by whoever opened it.
// Cancel must be called on teardown; it is safe to call more than once.
type Subscription interface {
	Cancel()
	// Done is closed once no more snapshots will be delivered.
	Done() <-chan struct{}
	// Err reports why the listener stopped; nil after Cancel.
	Err() error
}
