// Package runner executes one provisioning command at a time and exposes
// its progress through a mutex-guarded status record. A run is launched
// fire-and-forget from the request that triggers it; the only way to
// observe it is to poll Snapshot (or wait on Wait) until Running is false.
package runner
