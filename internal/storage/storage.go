// Package storage provides interfaces and types for persisting the tasks
// served by the GraphQL gateway. It supports multiple SQL backends through a
// common interface. The main types and interfaces are defined in types.go.
package storage
