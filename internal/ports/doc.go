// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers). Repository, cache and client ports are implemented
// by outbound adapters and called by the application layer or the CLI.
package ports
