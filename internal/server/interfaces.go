package server

// Server is the lifecycle contract of the transport server. RunServer blocks
// until a stop signal arrives or the listener fails; Shutdown drains open
// connections and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
