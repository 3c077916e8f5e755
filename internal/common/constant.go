package common

// AuthorizationHeader carries the bearer credential on every protected request.
const AuthorizationHeader = "Authorization"

// BearerPrefix is the scheme prefix expected in AuthorizationHeader,
// including the separating space.
const BearerPrefix = "Bearer "
