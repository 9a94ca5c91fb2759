package handlers

import (
	"fintrack/internal/middleware"
	"fintrack/internal/services/friend"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type FriendHandler struct {
	friends friend.Service
}

func NewFriendHandler(friends friend.Service) *FriendHandler {
	return &FriendHandler{friends: friends}
}

// SendRequest handles POST /api/friends/request.
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	message, err := h.friends.SendRequest(claims.UserID, input.Phone)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, message)
}

// PendingRequests handles GET /api/friends/requests.
func (h *FriendHandler) PendingRequests(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	requests, err := h.friends.PendingRequests(claims.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	out := make([]fiber.Map, 0, len(requests))
	for _, req := range requests {
		entry := fiber.Map{
			"id":         req.ID,
			"created_at": req.CreatedAt,
		}
		if req.Sender != nil {
			entry["sender"] = fiber.Map{
				"id":    req.Sender.ID,
				"name":  req.Sender.Name,
				"email": req.Sender.Email,
				"phone": req.Sender.Phone,
			}
		}
		out = append(out, entry)
	}
	return utils.Success(c, out)
}

// Accept handles PUT /api/friends/accept/:id.
func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return utils.BadRequest(c, "invalid request id")
	}

	if err := h.friends.Accept(claims.UserID, uint(requestID)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Friend request accepted")
}

// Reject handles PUT /api/friends/reject/:id.
func (h *FriendHandler) Reject(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return utils.BadRequest(c, "invalid request id")
	}

	if err := h.friends.Reject(claims.UserID, uint(requestID)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Friend request rejected")
}

// Remove handles DELETE /api/friends/:id.
func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	friendID, err := c.ParamsInt("id")
	if err != nil || friendID <= 0 {
		return utils.BadRequest(c, "invalid friend id")
	}

	if err := h.friends.Remove(claims.UserID, uint(friendID)); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Friend removed")
}

// List handles GET /api/friends.
func (h *FriendHandler) List(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	friends, err := h.friends.List(claims.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}

	out := make([]fiber.Map, 0, len(friends))
	for _, f := range friends {
		out = append(out, fiber.Map{
			"id":    f.ID,
			"name":  f.Name,
			"email": f.Email,
			"phone": f.Phone,
		})
	}
	return utils.Success(c, out)
}
