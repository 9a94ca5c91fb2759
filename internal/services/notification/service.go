// Package notification is the outbound notification sink. Delivery is
// fire-and-forget: callers never fail an operation because a
// notification could not be sent.
package notification

import (
	"log"

	"fintrack/internal/money"
)

// Notifier receives user-facing event notifications.
type Notifier interface {
	TransferReceived(userID uint, from string, amount int64)
	FriendRequestReceived(userID uint, from string)
	FriendRequestAccepted(userID uint, by string)
}

// Service is the log-backed notifier. Real transports (push, email)
// plug in behind the same interface.
type Service struct{}

func NewService() *Service { return &Service{} }

func (s *Service) TransferReceived(userID uint, from string, amount int64) {
	log.Printf("notify user %d: received %.2f from %s", userID, money.FromMinor(amount), from)
}

func (s *Service) FriendRequestReceived(userID uint, from string) {
	log.Printf("notify user %d: friend request from %s", userID, from)
}

func (s *Service) FriendRequestAccepted(userID uint, by string) {
	log.Printf("notify user %d: friend request accepted by %s", userID, by)
}
