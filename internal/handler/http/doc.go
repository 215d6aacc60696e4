// Package http implements the local control API of the sync process.
//
// It exposes the case record, sync status, backups and a websocket stream of
// notifications to the UI and the CLI. Request tracing, access logging and
// response compression are handled here before requests reach the service
// layer.
package http
