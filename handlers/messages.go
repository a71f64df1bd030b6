package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/middleware"
	"bookface/models"
)

func (s *Server) MessagesPage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	conversations, err := s.store.Conversations(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var selected *models.User
	messages := []models.Message{}

	// Selecting a counterpart loads the history and, as a side effect,
	// marks their unread messages as read. An unknown counterpart just
	// renders the plain conversation list.
	if otherID := c.Query("user"); otherID != "" {
		other, err := s.store.GetUser(ctx, otherID)
		if err == nil {
			selected = other
			messages, err = s.store.ConversationWith(ctx, userID, otherID)
			if err != nil {
				c.Redirect(http.StatusSeeOther, "/dashboard")
				return
			}
		}
	}

	c.HTML(http.StatusOK, "messages.html", gin.H{
		"User":          user,
		"Conversations": conversations,
		"Selected":      selected,
		"Messages":      messages,
	})
}

func (s *Server) SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	recipientID := c.PostForm("recipientId")

	_, err := s.store.SendMessage(c.Request.Context(), userID, recipientID, c.PostForm("content"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/messages")
		return
	}

	c.Redirect(http.StatusSeeOther, "/messages?user="+recipientID)
}
