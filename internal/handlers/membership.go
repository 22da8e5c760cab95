package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megdcosta/frijio/internal/auth"
	"github.com/megdcosta/frijio/internal/service"
)

// requireMember resolves the caller's session and confirms membership in
// the fridge named by the :id route parameter. On failure it writes the
// response and returns ok=false.
func requireMember(c *gin.Context, fridges *service.FridgeService) (auth.Session, string, bool) {
	sess, exists := auth.GetSession(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return auth.Session{}, "", false
	}

	fridgeID := c.Param("id")
	fridge, err := fridges.GetFridge(c.Request.Context(), fridgeID)
	if err != nil {
		// Missing fridge surfaces as NotFound, not as a membership failure.
		respondError(c, err)
		return auth.Session{}, "", false
	}

	member := false
	for _, m := range fridge.Members {
		if m == sess.UserID {
			member = true
			break
		}
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this fridge"})
		return auth.Session{}, "", false
	}

	return sess, fridgeID, true
}
