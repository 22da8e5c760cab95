package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megdcosta/frijio/internal/models"
	"github.com/megdcosta/frijio/internal/service"
	"github.com/megdcosta/frijio/internal/websocket"
)

type ExpenseHandler struct {
	fridges  *service.FridgeService
	expenses *service.ExpenseService
	hub      *websocket.Hub
}

func NewExpenseHandler(fridges *service.FridgeService, expenses *service.ExpenseService, hub *websocket.Hub) *ExpenseHandler {
	return &ExpenseHandler{fridges: fridges, expenses: expenses, hub: hub}
}

func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	expenses, err := h.expenses.ListExpenses(c.Request.Context(), fridgeID)
	if err != nil {
		respondError(c, err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense records a shared cost. Field validation happens in the
// service so the per-field messages reach the form exactly once.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	_, fridgeID, ok := requireMember(c, h.fridges)
	if !ok {
		return
	}

	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	expense, err := h.expenses.AddExpense(c.Request.Context(), fridgeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.BroadcastToFridge(fridgeID, websocket.MessageTypeExpenseUpdate, expense)
	c.JSON(http.StatusCreated, expense)
}
