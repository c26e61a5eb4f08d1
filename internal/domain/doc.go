// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the error taxonomy: sentinel errors, field-level validation errors
// and business rule errors.
package domain
