// Package utils provides general-purpose helpers shared by the client
// packages: the preconfigured HTTP client used by the transport layer and
// request identifiers carried through context.Context.
package utils
