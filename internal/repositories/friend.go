package repositories

import (
	stderrors "errors"
	"fmt"

	"fintrack/internal/errors"
	"fintrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendRepository persists friend requests and the directed edges of
// the friend graph.
type FriendRepository interface {
	CreateRequest(req *models.FriendRequest) error
	GetRequestByID(id uint) (*models.FriendRequest, error)
	FindRequestBetween(a, b uint) (*models.FriendRequest, error)
	UpdateRequest(req *models.FriendRequest) error
	DeleteRequestBetween(a, b uint) error
	PendingForReceiver(receiverID uint) ([]models.FriendRequest, error)

	AddEdge(userID, friendID uint) error
	RemoveEdge(userID, friendID uint) error
	AreFriends(a, b uint) (bool, error)
	ListFriends(userID uint) ([]models.User, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateRequest(req *models.FriendRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

func (r *friendRepository) GetRequestByID(id uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get friend request: %w", err)
	}
	return &req, nil
}

// FindRequestBetween looks up the relationship for an unordered pair,
// whichever side initiated it.
func (r *friendRepository) FindRequestBetween(a, b uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := r.db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		a, b, b, a).First(&req).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find friend request: %w", err)
	}
	return &req, nil
}

func (r *friendRepository) UpdateRequest(req *models.FriendRequest) error {
	if err := r.db.Save(req).Error; err != nil {
		return fmt.Errorf("failed to update friend request: %w", err)
	}
	return nil
}

func (r *friendRepository) DeleteRequestBetween(a, b uint) error {
	err := r.db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		a, b, b, a).Delete(&models.FriendRequest{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete friend request: %w", err)
	}
	return nil
}

func (r *friendRepository) PendingForReceiver(receiverID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.Where("receiver_id = ? AND status = ?", receiverID, models.FriendRequestPending).
		Order("created_at DESC").
		Preload("Sender", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "phone", "email")
		}).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}

// AddEdge inserts one directed friendship edge, ignoring duplicates so
// repeated accepts self-heal instead of failing.
func (r *friendRepository) AddEdge(userID, friendID uint) error {
	edge := &models.Friendship{UserID: userID, FriendID: friendID}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error
	if err != nil {
		return fmt.Errorf("failed to add friendship edge: %w", err)
	}
	return nil
}

func (r *friendRepository) RemoveEdge(userID, friendID uint) error {
	err := r.db.Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&models.Friendship{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove friendship edge: %w", err)
	}
	return nil
}

func (r *friendRepository) AreFriends(a, b uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("user_id = ? AND friend_id = ?", a, b).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return count > 0, nil
}

func (r *friendRepository) ListFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	err := r.db.
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.user_id = ?", userID).
		Select("users.id", "users.name", "users.phone", "users.email").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return friends, nil
}
