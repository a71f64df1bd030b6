package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/middleware"
)

const suggestedFriendLimit = 10

func (s *Server) FriendsPage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	friends, err := s.store.Friends(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	requests, err := s.store.PendingRequestsFor(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	suggested, err := s.store.SuggestedFriends(ctx, userID, suggestedFriendLimit)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	unread, _ := s.store.UnreadCount(ctx, userID)

	c.HTML(http.StatusOK, "friends.html", gin.H{
		"User":             user,
		"Friends":          friends,
		"FriendRequests":   requests,
		"SuggestedFriends": suggested,
		"Unread":           unread,
	})
}

func (s *Server) SendFriendRequest(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.SendFriendRequest(c.Request.Context(), userID, c.PostForm("recipientId"))
	c.Redirect(http.StatusSeeOther, "/friends")
}

func (s *Server) AcceptFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.AcceptFriendRequest(c.Request.Context(), c.PostForm("requestId"), userID)
	c.Redirect(http.StatusSeeOther, "/friends")
}

func (s *Server) DeclineFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.DeclineFriendRequest(c.Request.Context(), c.PostForm("requestId"), userID)
	c.Redirect(http.StatusSeeOther, "/friends")
}

func (s *Server) RemoveFriend(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.RemoveFriend(c.Request.Context(), userID, c.PostForm("friendId"))
	c.Redirect(http.StatusSeeOther, "/friends")
}
