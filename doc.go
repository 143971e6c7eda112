// Package purr marshals values between Go and the CQL binary protocol.
// The params package classifies and encodes query parameters, the results
// package reconstructs Go values from protocol-decoded columns and maps
// rows onto host objects, and the root package carries the shared error
// taxonomy and consistency levels. All of it is pure and stateless; the
// connection, query execution, and transport live in the driver this
// library is plugged into.
package purr
