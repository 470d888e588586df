package server

type Config struct {
	// ListenAddr is the HTTP listen address of the report view.
	ListenAddr string
}
