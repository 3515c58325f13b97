// Package mock provides function-field mock implementations of the
// stockwire interfaces for use in tests.
package mock
