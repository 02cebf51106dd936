// Package services is the client core: the note repository, the search
// coordinator, the composer, the auth service and the Notebook that wires
// their observer relations.
//
// Every data call receives a session.Session explicitly. State is guarded by
// per-component mutexes that are never held across network calls, and
// observers run after locks are released.
package services
