// Package events records and distributes task progress events.
//
// The primary components are:
// - Log: the append-only, ordered event sequence owned by a single task
// - RecordedEvent: an appended event together with the ID of its task
// - EventHandler: interface for components that react to recorded events
// - EventEmitter: interface for components that publish recorded events
//
// The task store owns one Log per task and serializes access to it. After an
// event is appended, the executor publishes it through an EventEmitter so
// that observers such as metrics can react without coupling to the store.
package events
