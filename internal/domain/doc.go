// Package domain contains shared domain types used across entity sub-packages.
// The todo entity and its state enumeration live in domain/todo. This root
// package holds the sentinel errors and structured error types that every layer
// classifies against.
package domain
