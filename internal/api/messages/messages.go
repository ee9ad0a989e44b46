// Package messages centralizes every user-facing response message so the two
// services stay word-for-word consistent with each other.
package messages

const (
	UserCreated        = "User created successfully"
	UserNotFound       = "User not found"
	UserExists         = "User email already exists"
	UserListEmpty      = "User list is empty"
	UserList           = "User list fetched successfully"
	UserDetails        = "User details fetched successfully"
	UserIDOrEmail      = "Either user ID or email is required"
	SignInSuccess      = "User signed in successfully"
	InvalidCredentials = "Invalid credentials, either email or password is incorrect"
	InvalidToken       = "Auth token is invalid"
	TokenRequired      = "Auth token is required"
	Unauthorized       = "Unauthorized access"
	ForbiddenUser      = "You are unauthorized to access this resource"
	ForbiddenPost      = "You are not allowed to access this resource"
	InternalError      = "Something went wrong, please try again later"
	NoRecords          = "No records found"

	PostCreated  = "Post created successfully"
	PostUpdated  = "Post updated successfully"
	PostDeleted  = "Post deleted successfully"
	PostNotFound = "Post not found"
	PostExists   = "Post already exists"
	PostList     = "Post list fetched successfully"
	PostDetails  = "Post details fetched successfully"
)
