// Package daemon wires the publish worker into a long-running process with
// single-instance locking and cooperative shutdown.
package daemon
