// Package domain contains the core entities of the agent task service: tasks,
// their lifecycle states, and the progress events recorded while an agent
// works on them. It is independent of storage, transport, and the agent
// implementation.
package domain
