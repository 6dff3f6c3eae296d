// Package mockserver is a local stand-in for the missions GraphQL endpoint.
//
// Requests are parsed and validated with gqlparser against the same embedded
// schema the client uses, so a document the mock accepts is one the client
// may send. missionsResult honors find (case-insensitive substring per
// entry), offset and limit, and the response carries only the selected
// fields. Fixtures come from YAML; DefaultFixtures returns the embedded set.
package mockserver
