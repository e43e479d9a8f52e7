package user

import (
	"context"
	"time"

	"openbook/internal/dbmysql"
)

// FriendshipService owns the friend-request lifecycle:
//
//	(none) --SendRequest--> pending --RespondToRequest--> accepted
//	                        pending --IgnoreRequest--> (row deleted)
//
// A single row represents the relationship for an unordered pair of users;
// the row is directional (requester/recipient) but resolved symmetrically for
// reads. No transition exists out of accepted.
type FriendshipService interface {
	SendRequest(ctx context.Context, actorID, targetUserID uint64) (*dbmysql.Friend, error)
	RespondToRequest(ctx context.Context, actorID, requesterID uint64, status int) (*dbmysql.Friend, error)
	IgnoreRequest(ctx context.Context, actorID, requesterID uint64) error
	ResolveFriendship(ctx context.Context, userA, userB uint64) (*dbmysql.Friend, error)
}

type friendshipService struct {
	userRepo   UserRepository
	friendRepo FriendRepository
}

func NewFriendshipService(userRepo UserRepository, friendRepo FriendRepository) FriendshipService {
	return &friendshipService{userRepo: userRepo, friendRepo: friendRepo}
}

// SendRequest records a pending friend request from the actor to the target
// user. Resending for a pair that already has a row, in either direction,
// returns the existing row unchanged.
func (s *friendshipService) SendRequest(ctx context.Context, actorID, targetUserID uint64) (*dbmysql.Friend, error) {
	if actorID == targetUserID {
		return nil, ErrCannotFriendSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	return s.friendRepo.FirstOrCreateFriendRequest(ctx, actorID, targetUserID)
}

// RespondToRequest accepts the pending request the named requester sent to
// the actor. Anyone other than the recipient, the requester included, gets
// ErrFriendRequestNotFound.
func (s *friendshipService) RespondToRequest(ctx context.Context, actorID, requesterID uint64, status int) (*dbmysql.Friend, error) {
	friend, err := s.friendRepo.GetPendingRequest(ctx, requesterID, actorID)
	if err != nil {
		return nil, err
	}
	if friend == nil {
		return nil, ErrFriendRequestNotFound
	}

	friend.Confirm(status, time.Now())
	if err := s.friendRepo.UpdateFriendRequest(ctx, friend); err != nil {
		return nil, err
	}
	return friend, nil
}

// IgnoreRequest deletes the pending request the named requester sent to the
// actor. Nothing remains of the relationship afterwards; the pair may start
// over with a fresh request.
func (s *friendshipService) IgnoreRequest(ctx context.Context, actorID, requesterID uint64) error {
	friend, err := s.friendRepo.GetPendingRequest(ctx, requesterID, actorID)
	if err != nil {
		return err
	}
	if friend == nil {
		return ErrFriendRequestNotFound
	}

	return s.friendRepo.DeleteFriendRequest(ctx, friend)
}

// ResolveFriendship is the read-only symmetric lookup used when presenting a
// profile. Absent relationships come back as (nil, nil), never as an error.
func (s *friendshipService) ResolveFriendship(ctx context.Context, userA, userB uint64) (*dbmysql.Friend, error) {
	return s.friendRepo.FindBetween(ctx, userA, userB)
}
