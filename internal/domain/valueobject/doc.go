// Package valueobject holds the immutable, self-validating values the todo
// domain is built from: identifiers, email, password, priority, status and
// role. Every value is produced by a factory that either returns a valid value
// or a serrors.ErrValidation error, never a half-built instance.
package valueobject
