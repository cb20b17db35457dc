// Package listen opens TCP listeners with an explicit accept backlog.
package listen

// DefaultBacklog is the pending-connection queue length requested from the OS.
const DefaultBacklog = 5
