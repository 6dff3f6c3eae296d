// Package missions is the data source for missionboard: the Mission record,
// the GraphQL schema and query document, and an HTTP client for endpoints
// exposing missionsResult (the SpaceX API shape).
//
// # Query
//
// Every fetch sends the same embedded document:
//
//	query MissionsQuery($limit: Int, $find: MissionsFind) {
//	  missionsResult(limit: $limit, find: $find) {
//	    data { id name description manufacturers twitter website wikipedia }
//	    result { totalCount }
//	  }
//	}
//
// The document is validated against the embedded schema when a Client is
// built, and the variables of each request are coerced against the
// operation before anything goes on the wire, so a malformed find never
// reaches the server.
//
// # Errors
//
//   - ErrInvalidFind: the find field is not part of MissionsFind
//   - *GraphQLError: the server answered with an errors array
//   - wrapped transport/decode errors for everything else
//
// The client never retries. Refreshing is the caller's decision.
package missions
