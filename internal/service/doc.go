// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Each service focuses on a specific domain area (accounts, questions,
// answers, voting) and receives its dependencies through constructor
// injection: repository interfaces, the database handle for transactional
// boundaries, and a logger. Services never depend on concrete infrastructure
// implementations.
//
// Error handling follows a sentinel-error approach: expected conditions
// surface as errors from internal/store or internal/domain that callers
// check with errors.Is, and the API layer maps them to HTTP status codes.
package service
