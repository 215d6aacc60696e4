// Package server runs the local control API over HTTP.
//
// The server lives for as long as the context handed to RunServer and shuts
// down gracefully when it is cancelled.
package server
