package user

import "errors"

// Domain error kinds surfaced by the services in this package. Both map to a
// not-found response at the HTTP boundary; they are terminal and never expose
// internal state.
var (
	// ErrUserNotFound means the named counterpart user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFriendRequestNotFound means no pending request matches the
	// actor/requester pair, whether due to absence, wrong direction, or
	// wrong actor.
	ErrFriendRequestNotFound = errors.New("friend request not found")

	// ErrCannotFriendSelf rejects a request whose target is the actor.
	ErrCannotFriendSelf = errors.New("cannot send a friend request to yourself")

	// ErrEmailTaken rejects registration with an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
