package contextkeys

// A private type prevents collisions with other packages' keys.
type contextKey string

// DBContextKey stores the *gorm.DB (pool or transaction) for the request.
const DBContextKey = contextKey("db")

// IdentityContextKey stores the identity resolved by the authorization guard.
const IdentityContextKey = contextKey("identity")
