// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation for the reconciliation endpoints.
//   - rayid: assigns every request a ray id, stored in the context and echoed
//     in the response headers, so log entries can be traced per request.
package middleware
