package friend

import (
	"testing"

	"fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct {
	user, friend uint
}

// memFriendRepo mimics the store semantics: one request per unordered
// pair, directed edges deduplicated on insert.
type memFriendRepo struct {
	requests map[uint]*models.FriendRequest
	edges    map[edge]bool
	users    map[uint]*models.User
	nextID   uint
}

func newMemFriendRepo(users ...*models.User) *memFriendRepo {
	repo := &memFriendRepo{
		requests: map[uint]*models.FriendRequest{},
		edges:    map[edge]bool{},
		users:    map[uint]*models.User{},
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memFriendRepo) CreateRequest(req *models.FriendRequest) error {
	r.nextID++
	req.ID = r.nextID
	if req.Status == "" {
		req.Status = models.FriendRequestPending
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memFriendRepo) GetRequestByID(id uint) (*models.FriendRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, errors.ErrRequestNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memFriendRepo) FindRequestBetween(a, b uint) (*models.FriendRequest, error) {
	for _, req := range r.requests {
		if (req.SenderID == a && req.ReceiverID == b) || (req.SenderID == b && req.ReceiverID == a) {
			cp := *req
			return &cp, nil
		}
	}
	return nil, errors.ErrRequestNotFound
}

func (r *memFriendRepo) UpdateRequest(req *models.FriendRequest) error {
	if _, ok := r.requests[req.ID]; !ok {
		return errors.ErrRequestNotFound
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *memFriendRepo) DeleteRequestBetween(a, b uint) error {
	for id, req := range r.requests {
		if (req.SenderID == a && req.ReceiverID == b) || (req.SenderID == b && req.ReceiverID == a) {
			delete(r.requests, id)
		}
	}
	return nil
}

func (r *memFriendRepo) PendingForReceiver(receiverID uint) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for _, req := range r.requests {
		if req.ReceiverID == receiverID && req.Status == models.FriendRequestPending {
			cp := *req
			cp.Sender = r.users[req.SenderID]
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *memFriendRepo) AddEdge(userID, friendID uint) error {
	r.edges[edge{userID, friendID}] = true
	return nil
}

func (r *memFriendRepo) RemoveEdge(userID, friendID uint) error {
	delete(r.edges, edge{userID, friendID})
	return nil
}

func (r *memFriendRepo) AreFriends(a, b uint) (bool, error) {
	return r.edges[edge{a, b}], nil
}

func (r *memFriendRepo) ListFriends(userID uint) ([]models.User, error) {
	var out []models.User
	for e := range r.edges {
		if e.user == userID {
			if u, ok := r.users[e.friend]; ok {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

type memIdentity struct {
	users map[uint]*models.User
}

func (m *memIdentity) GetByID(id uint) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errors.ErrUserNotFound
}

func (m *memIdentity) GetByPhone(phone string) (*models.User, error) {
	for _, u := range m.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func newTestService(t *testing.T) (Service, *memFriendRepo, *models.User, *models.User) {
	t.Helper()
	asha := &models.User{Name: "Asha", Phone: "9000000001"}
	asha.ID = 1
	ravi := &models.User{Name: "Ravi", Phone: "9000000002"}
	ravi.ID = 2

	repo := newMemFriendRepo(asha, ravi)
	identity := &memIdentity{users: map[uint]*models.User{asha.ID: asha, ravi.ID: ravi}}
	return NewService(repo, identity, nil), repo, asha, ravi
}

func acceptPending(t *testing.T, svc Service, repo *memFriendRepo, receiverID uint) {
	t.Helper()
	pending, err := svc.PendingRequests(receiverID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NoError(t, svc.Accept(receiverID, pending[0].ID))
}

func TestSendRequestValidation(t *testing.T) {
	svc, _, asha, _ := newTestService(t)

	_, err := svc.SendRequest(asha.ID, "")
	assert.ErrorIs(t, err, errors.ErrPhoneRequired)

	_, err = svc.SendRequest(asha.ID, asha.Phone)
	assert.ErrorIs(t, err, errors.ErrSelfFriend)

	_, err = svc.SendRequest(asha.ID, "9999999999")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestRequestAcceptLifecycle(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	msg, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)
	assert.Equal(t, "Friend request sent", msg)

	pending, err := svc.PendingRequests(ravi.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, asha.ID, pending[0].SenderID)

	// Only the receiver may accept.
	assert.ErrorIs(t, svc.Accept(asha.ID, pending[0].ID), errors.ErrNotAuthorized)

	require.NoError(t, svc.Accept(ravi.ID, pending[0].ID))

	// Friendship is symmetric.
	forward, err := repo.AreFriends(asha.ID, ravi.ID)
	require.NoError(t, err)
	backward, err := repo.AreFriends(ravi.ID, asha.ID)
	require.NoError(t, err)
	assert.True(t, forward)
	assert.True(t, backward)

	friends, err := svc.List(asha.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, ravi.ID, friends[0].ID)

	// Accepting again is a no-op, not an error.
	assert.NoError(t, svc.Accept(ravi.ID, pending[0].ID))
}

func TestDuplicateRequests(t *testing.T) {
	svc, _, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)

	_, err = svc.SendRequest(asha.ID, ravi.Phone)
	assert.ErrorIs(t, err, errors.ErrRequestPending)

	// The other direction sees the inbound request instead.
	_, err = svc.SendRequest(ravi.ID, asha.Phone)
	assert.ErrorIs(t, err, errors.ErrInboundPending)
}

func TestRequestToExistingFriend(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)
	acceptPending(t, svc, repo, ravi.ID)

	_, err = svc.SendRequest(asha.ID, ravi.Phone)
	assert.ErrorIs(t, err, errors.ErrAlreadyFriends)
}

func TestRejectThenReRequest(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)

	pending, err := svc.PendingRequests(ravi.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NoError(t, svc.Reject(ravi.ID, pending[0].ID))

	// A rejected request cannot be accepted later.
	assert.ErrorIs(t, svc.Accept(ravi.ID, pending[0].ID), errors.ErrRequestRejected)

	// Either side can restart the relationship. Here the original
	// receiver re-requests; the reset request points back at them as
	// sender.
	msg, err := svc.SendRequest(ravi.ID, asha.Phone)
	require.NoError(t, err)
	assert.Equal(t, "Friend request sent again", msg)

	pending, err = svc.PendingRequests(asha.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ravi.ID, pending[0].SenderID)

	require.NoError(t, svc.Accept(asha.ID, pending[0].ID))
	linked, err := repo.AreFriends(asha.ID, ravi.ID)
	require.NoError(t, err)
	assert.True(t, linked)
}

func TestRejectOnlyPending(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)

	pending, err := svc.PendingRequests(ravi.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	assert.ErrorIs(t, svc.Reject(asha.ID, pending[0].ID), errors.ErrNotAuthorized)

	acceptPending(t, svc, repo, ravi.ID)
	assert.ErrorIs(t, svc.Reject(ravi.ID, pending[0].ID), errors.ErrRequestProcessed)
}

func TestRemoveAndReRequest(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)
	acceptPending(t, svc, repo, ravi.ID)

	require.NoError(t, svc.Remove(asha.ID, ravi.ID))

	forward, err := repo.AreFriends(asha.ID, ravi.ID)
	require.NoError(t, err)
	backward, err := repo.AreFriends(ravi.ID, asha.ID)
	require.NoError(t, err)
	assert.False(t, forward)
	assert.False(t, backward)

	// Removal clears the request too, so the pair starts over.
	msg, err := svc.SendRequest(ravi.ID, asha.Phone)
	require.NoError(t, err)
	assert.Equal(t, "Friend request sent", msg)
}

func TestAcceptedRequestWithMissingEdgesSelfHeals(t *testing.T) {
	svc, repo, asha, ravi := newTestService(t)

	_, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)
	acceptPending(t, svc, repo, ravi.ID)

	// Simulate a partial accept that lost the edges.
	require.NoError(t, repo.RemoveEdge(asha.ID, ravi.ID))
	require.NoError(t, repo.RemoveEdge(ravi.ID, asha.ID))

	msg, err := svc.SendRequest(asha.ID, ravi.Phone)
	require.NoError(t, err)
	assert.Equal(t, "Friend added (restored)", msg)

	linked, err := repo.AreFriends(ravi.ID, asha.ID)
	require.NoError(t, err)
	assert.True(t, linked)
}
