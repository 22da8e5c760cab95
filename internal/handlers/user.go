package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megdcosta/frijio/internal/auth"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/store"
)

type UserHandler struct {
	accounts store.AccountStore
	fridges  *service.FridgeService
}

func NewUserHandler(accounts store.AccountStore, fridges *service.FridgeService) *UserHandler {
	return &UserHandler{accounts: accounts, fridges: fridges}
}

// GetCurrentUser returns the caller's account together with their fridge
// memberships. An empty membership list means no record exists yet.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	account, err := h.accounts.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	user, err := h.fridges.GetUser(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	fridgeIDs := []string{}
	if user != nil {
		fridgeIDs = user.FridgeIDs
	}

	c.JSON(http.StatusOK, gin.H{
		"account":    account,
		"fridge_ids": fridgeIDs,
	})
}
