package models

import "time"

// Friend request statuses.
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest tracks the lifecycle of a relationship between two
// users. At most one logical relationship exists per unordered pair;
// a rejected request can be reset to pending when either side
// re-requests.
type FriendRequest struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	SenderID   uint   `gorm:"index;not null" json:"sender_id"`
	ReceiverID uint   `gorm:"index;not null" json:"receiver_id"`
	Status     string `gorm:"not null;default:'pending'" json:"status"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Friendship is one directed edge of the friend graph. The friend
// service maintains the symmetry invariant: an edge (A, B) always has
// a matching edge (B, A).
type Friendship struct {
	ID       uint `gorm:"primarykey" json:"id"`
	UserID   uint `gorm:"uniqueIndex:idx_friend_pair;not null" json:"user_id"`
	FriendID uint `gorm:"uniqueIndex:idx_friend_pair;not null" json:"friend_id"`

	CreatedAt time.Time `json:"created_at"`
}
