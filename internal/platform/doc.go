// Package platform isolates host-specific behaviour: naming the host OS for
// native SDK resolution, Unix permission bits, and durable atomic writes for
// generated files.
package platform
