// Package openalex implements the AcademicGraph port against the OpenAlex
// REST API (https://api.openalex.org).
//
// OpenAlex is unauthenticated; requests join the polite pool by sending a
// configured mailto parameter. A token-bucket rate limiter keeps request
// rates well below the published limits.
package openalex
