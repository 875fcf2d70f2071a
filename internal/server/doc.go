/*
Package server provides HTTP server lifecycle management: non-blocking
startup, graceful shutdown, and system signal handling.

The Manager wraps net/http.Server and unifies listening, serving, shutdown,
and error propagation. WaitForShutdown listens for SIGINT/SIGTERM and drains
in-flight requests within the configured timeout, which is what the tripcost
binary relies on for clean stops in production.
*/
package server
