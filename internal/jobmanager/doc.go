// Package jobmanager provides functionality for running and observing Linux
// processes as Jobs.
//
// A Job owns the lifecycle of exactly one process execution: its pid, its
// status, and its accumulated stdout/stderr output. The combined output of a
// Job can be streamed concurrently to multiple clients, while the process is
// running and after it has finished.
//
// A Manager creates and tracks Jobs, identified by UUID.
package jobmanager
