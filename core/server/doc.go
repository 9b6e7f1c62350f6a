// Package server holds the HTTP server configuration.
//
// While cmd/serve handles the server startup, this package defines the
// configuration structure for the listening port, the optional API key that
// protects the read API and the request body limit used by image uploads.
package server
