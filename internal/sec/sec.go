// Package sec provides authentication and security primitives for the
// admin API.
//
// # Authentication
//
// Admins exchange a username/password pair for a signed bearer token via the
// login endpoint. Passwords are validated against bcrypt hashes held in
// storage; tokens are stateless HMAC-signed JWTs with an embedded 24-hour
// expiry, so logout is purely a client-side token discard and the server
// keeps no session state.
//
// # Components
//
//   - [HashPassword], [VerifyPassword]: bcrypt password hashing utilities
//   - [Tokens]: issues and validates signed bearer tokens
//   - [RequireAdmin]: echo middleware gating every admin-only route
//   - [GetAdmin], [SetAdmin]: context accessors for the authenticated admin
//   - [EnsureDefaultAdmin]: startup bootstrap for the configured admin account
package sec
