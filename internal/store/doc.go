// Package store provides abstractions for data persistence: one interface
// per entity, sentinel errors shared by every implementation, and the
// transaction helper used by services to compose multi-step writes.
package store
