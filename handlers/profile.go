package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/middleware"
	"bookface/models"
)

func (s *Server) ProfilePage(c *gin.Context) {
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

	posts, err := s.store.ListPostsByAuthor(ctx, userID, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	unread, _ := s.store.UnreadCount(ctx, userID)

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":    user,
		"Friends": friends,
		"Posts":   posts,
		"Unread":  unread,
	})
}

func (s *Server) UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	upd, err := models.NewProfileUpdate(c.PostForm("firstName"), c.PostForm("lastName"), c.PostForm("bio"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	s.store.UpdateProfile(c.Request.Context(), userID, upd)
	c.Redirect(http.StatusSeeOther, "/profile")
}
