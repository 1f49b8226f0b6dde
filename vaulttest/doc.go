// Package vaulttest provides mocks and helpers for testing vault handlers,
// decorators and extensions.
package vaulttest
