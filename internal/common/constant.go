package common

// TokenHeaderScheme is the Authorization scheme used to carry the bearer
// token on authenticated requests, e.g. "Authorization: Token <value>".
const TokenHeaderScheme = "Token"
