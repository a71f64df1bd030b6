package apperr

var (
	ErrDuplicateEmail     = Conflict("email already registered")
	ErrInvalidCredentials = NotAuthorized("invalid email or password")
	ErrUserNotFound       = NotFound("user not found")
	ErrRequestNotFound    = NotFound("friend request not found")
	ErrNotRecipient       = NotAuthorized("only the recipient can act on this request")
	ErrRequestResolved    = Conflict("friend request already resolved")
	ErrPostNotFound       = NotFound("post not found")

	ErrFirstNameRequired = Validation("first name is required")
	ErrLastNameRequired  = Validation("last name is required")
	ErrEmailRequired     = Validation("email is required")
	ErrPasswordTooShort  = Validation("password must be at least 6 characters")
	ErrPasswordMismatch  = Validation("passwords do not match")
	ErrEmptyContent      = Validation("content cannot be empty")
	ErrContentTooLong    = Validation("content must be 1000 characters or fewer")
	ErrBioTooLong        = Validation("bio must be 500 characters or fewer")
)
