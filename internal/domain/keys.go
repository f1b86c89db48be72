package domain

type CtxKey string

// Keys the auth middleware sets on the request context. Usecases take the
// resolved identity as explicit arguments so they can be exercised directly
// in tests without an HTTP layer.
const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
