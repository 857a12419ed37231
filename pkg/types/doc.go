// Package types defines the record kinds, the shared Animal field set,
// configuration, and the standard errors for the animals record manager.
package types
