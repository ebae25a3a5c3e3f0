// Package apperr holds the error taxonomy shared by the workflows and the
// request boundary. All four kinds surface to the boundary; none are retried.
package apperr

import "fmt"

// NotFoundError means a referenced group/topic/subject/post does not exist.
type NotFoundError struct {
	Subject string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v not found", e.Subject)
}

func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Subject: fmt.Sprintf(format, args...)}
}

// NotAllowedError is a permission denial carrying a human-readable reason.
type NotAllowedError struct {
	Reason string
}

func (e *NotAllowedError) Error() string {
	return fmt.Sprintf("you don't have permission to %v", e.Reason)
}

func NotAllowed(format string, args ...interface{}) *NotAllowedError {
	return &NotAllowedError{Reason: fmt.Sprintf(format, args...)}
}

// NotJoinPrivateGroup builds the denial for posting into a private group
// without membership, so clients can tell it apart from a generic 403.
func NotJoinPrivateGroup(groupName string) *NotAllowedError {
	return NotAllowed("post, join private group '%v' first", groupName)
}

// UnimplementedError marks a recognized but unsupported combination, distinct
// from a generic failure so clients can detect missing features.
type UnimplementedError struct {
	Feature string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%v is not implemented", e.Feature)
}

func Unimplemented(format string, args ...interface{}) *UnimplementedError {
	return &UnimplementedError{Feature: fmt.Sprintf(format, args...)}
}

// DataIntegrityError means an invariant the system assumes always holds was
// violated (a valid token without a user row, a topic without its body post).
// It indicates storage corruption or a bug, never a user-triggerable state.
type DataIntegrityError struct {
	Detail string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("unexpected inconsistency: %v", e.Detail)
}

func DataIntegrity(format string, args ...interface{}) *DataIntegrityError {
	return &DataIntegrityError{Detail: fmt.Sprintf(format, args...)}
}
