package constants

// Keys under which middleware stores values on the gin context.
const (
	ContextKeyUserID = "userID"
	ContextKeyUser   = "user"
)
