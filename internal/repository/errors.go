// Package repository implements the entity store for events, users and
// tickets on top of MySQL. This file defines the sentinel errors shared
// by the repositories so that higher layers such as services and
// handlers can distinguish failure causes with errors.Is instead of
// inspecting database error strings themselves.
package repository

import "errors"

// ErrInvalidInput is returned when a create operation receives a record
// that violates a field constraint (empty required string, negative
// capacity). The wrapped message names the offending field. Handlers
// should translate this into an HTTP 400 response.
var ErrInvalidInput = errors.New("invalid input")

// ErrEventNotFound is returned when a lookup or reservation references
// an event id that does not exist.
var ErrEventNotFound = errors.New("event does not exist")

// ErrUserNotFound is returned when a lookup or reservation references
// a user id that does not exist.
var ErrUserNotFound = errors.New("user does not exist")

// ErrNoCapacity is returned when an event has no remaining tickets. It
// is a legitimate business rejection, not a system fault, and is never
// retried internally.
var ErrNoCapacity = errors.New("no tickets available for this event")
