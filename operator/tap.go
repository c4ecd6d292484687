package operator

// WorkList is the channel through which a Tap hands its work units to the engine
type WorkList chan *WorkUnit

// Tap is the interface for the types responsible to send work units to an Engine
type Tap interface {
	// Open opens the tap and starts pushing work units into its pipe.
	// The engine opens the tap on Start, so there is no need for you to explicitly call this method.
	// NOTE: The implementation of this function SHOULD NOT be blocking.
	Open()
	// Close stops pushing work units and closes the pipe.
	// NOTE: Make sure the implementation of this method blocks until all the tap's internal resources are released
	Close()
	// IsOpen returns true if the tap is open
	IsOpen() bool
	// Pipe returns the channel the engine workers read from
	Pipe() WorkList
}
