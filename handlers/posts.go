package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/middleware"
)

const dashboardPostLimit = 20

func (s *Server) Dashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	posts, err := s.store.ListRecentPosts(ctx, userID, dashboardPostLimit)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	friends, err := s.store.Friends(ctx, userID)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	unread, _ := s.store.UnreadCount(ctx, userID)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":    user,
		"Posts":   posts,
		"Friends": friends,
		"Unread":  unread,
	})
}

func (s *Server) CreatePost(c *gin.Context) {
	userID := middleware.GetUserID(c)

	// Empty content falls through to the redirect, same as every other
	// failure on this page.
	s.store.CreatePost(c.Request.Context(), userID, c.PostForm("content"))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) DeletePost(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.DeletePostIfOwner(c.Request.Context(), c.PostForm("postId"), userID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) LikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.ToggleLike(c.Request.Context(), c.PostForm("postId"), userID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) AddComment(c *gin.Context) {
	userID := middleware.GetUserID(c)

	s.store.AddComment(c.Request.Context(), c.PostForm("postId"), userID, c.PostForm("content"))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
