// Package friend maintains the friend graph: request lifecycle plus
// the symmetric friendship edges the transfer flow builds its contact
// list from.
package friend

import (
	stderrors "errors"

	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// Identity resolves users by phone for outgoing requests.
type Identity interface {
	GetByID(id uint) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
}

// Notifier tells users about request events. Fire-and-forget.
type Notifier interface {
	FriendRequestReceived(userID uint, from string)
	FriendRequestAccepted(userID uint, by string)
}

// Service is the friend graph contract.
type Service interface {
	SendRequest(senderID uint, phone string) (string, error)
	PendingRequests(receiverID uint) ([]models.FriendRequest, error)
	Accept(receiverID, requestID uint) error
	Reject(receiverID, requestID uint) error
	Remove(userID, friendID uint) error
	List(userID uint) ([]models.User, error)
}

type service struct {
	repo     repositories.FriendRepository
	identity Identity
	notifier Notifier
}

// NewService creates the friend graph service. Notifier is optional.
func NewService(repo repositories.FriendRepository, identity Identity, notifier Notifier) Service {
	if repo == nil {
		panic("friend repository is required")
	}
	if identity == nil {
		panic("identity directory is required")
	}
	return &service{repo: repo, identity: identity, notifier: notifier}
}

// SendRequest starts (or restarts) a relationship with the user behind
// the given phone number. A rejected relationship resets to pending
// with the new direction recorded explicitly; an accepted one with
// missing edges self-heals instead of erroring.
func (s *service) SendRequest(senderID uint, phone string) (string, error) {
	if phone == "" {
		return "", errors.ErrPhoneRequired
	}

	sender, err := s.identity.GetByID(senderID)
	if err != nil {
		return "", err
	}
	if phone == sender.Phone {
		return "", errors.ErrSelfFriend
	}

	receiver, err := s.identity.GetByPhone(phone)
	if err != nil {
		return "", err
	}

	linked, err := s.repo.AreFriends(senderID, receiver.ID)
	if err != nil {
		return "", err
	}

	existing, err := s.repo.FindRequestBetween(senderID, receiver.ID)
	if err != nil && !stderrors.Is(err, errors.ErrRequestNotFound) {
		return "", err
	}

	if existing != nil {
		switch existing.Status {
		case models.FriendRequestAccepted:
			if linked {
				return "", errors.ErrAlreadyFriends
			}
			// An earlier accept left the edges incomplete; restore
			// them rather than creating a second relationship.
			if err := s.link(senderID, receiver.ID); err != nil {
				return "", err
			}
			return "Friend added (restored)", nil

		case models.FriendRequestPending:
			if existing.SenderID == senderID {
				return "", errors.ErrRequestPending
			}
			return "", errors.ErrInboundPending

		default:
			// Rejected: reset to pending, re-pointed at the current
			// direction so the receiver sees who is asking now.
			existing.Status = models.FriendRequestPending
			existing.SenderID = senderID
			existing.ReceiverID = receiver.ID
			if err := s.repo.UpdateRequest(existing); err != nil {
				return "", err
			}
			s.notifyRequest(receiver.ID, sender.Name)
			return "Friend request sent again", nil
		}
	}

	if linked {
		return "", errors.ErrAlreadyFriends
	}

	if err := s.repo.CreateRequest(&models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	}); err != nil {
		return "", err
	}
	s.notifyRequest(receiver.ID, sender.Name)
	return "Friend request sent", nil
}

func (s *service) PendingRequests(receiverID uint) ([]models.FriendRequest, error) {
	return s.repo.PendingForReceiver(receiverID)
}

// Accept marks the request accepted and links both users. Only the
// receiver may accept. Accepting twice is idempotent and re-links any
// missing edge.
func (s *service) Accept(receiverID, requestID uint) error {
	request, err := s.repo.GetRequestByID(requestID)
	if err != nil {
		return err
	}
	if request.ReceiverID != receiverID {
		return errors.ErrNotAuthorized
	}
	if request.Status == models.FriendRequestRejected {
		return errors.ErrRequestRejected
	}

	if request.Status == models.FriendRequestPending {
		request.Status = models.FriendRequestAccepted
		if err := s.repo.UpdateRequest(request); err != nil {
			return err
		}
	}

	if err := s.link(request.SenderID, request.ReceiverID); err != nil {
		return err
	}

	if s.notifier != nil {
		if receiver, err := s.identity.GetByID(receiverID); err == nil {
			s.notifier.FriendRequestAccepted(request.SenderID, receiver.Name)
		}
	}
	return nil
}

// Reject declines a pending request. Only the receiver may reject, and
// only while the request is still pending.
func (s *service) Reject(receiverID, requestID uint) error {
	request, err := s.repo.GetRequestByID(requestID)
	if err != nil {
		return err
	}
	if request.ReceiverID != receiverID {
		return errors.ErrNotAuthorized
	}
	if request.Status != models.FriendRequestPending {
		return errors.ErrRequestProcessed
	}

	request.Status = models.FriendRequestRejected
	return s.repo.UpdateRequest(request)
}

// Remove unfriends both sides and deletes the request document so a
// future request starts clean.
func (s *service) Remove(userID, friendID uint) error {
	if _, err := s.identity.GetByID(friendID); err != nil {
		return err
	}

	if err := s.repo.RemoveEdge(userID, friendID); err != nil {
		return err
	}
	if err := s.repo.RemoveEdge(friendID, userID); err != nil {
		return err
	}
	return s.repo.DeleteRequestBetween(userID, friendID)
}

func (s *service) List(userID uint) ([]models.User, error) {
	return s.repo.ListFriends(userID)
}

// link creates both directed edges, symmetric by construction.
func (s *service) link(a, b uint) error {
	if err := s.repo.AddEdge(a, b); err != nil {
		return err
	}
	return s.repo.AddEdge(b, a)
}

func (s *service) notifyRequest(receiverID uint, senderName string) {
	if s.notifier != nil {
		s.notifier.FriendRequestReceived(receiverID, senderName)
	}
}
