package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookface/config"
	"bookface/middleware"
	"bookface/models"
	"bookface/utils"
)

type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type SignupForm struct {
	FirstName       string `form:"firstName"`
	LastName        string `form:"lastName"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

func (s *Server) Home(c *gin.Context) {
	if _, ok := middleware.SessionUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (s *Server) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Invalid email or password"})
		return
	}

	user, err := s.store.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": errorMessage(err)})
		return
	}

	s.startSession(c, user.ID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

func (s *Server) Signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{"Error": "An error occurred. Please try again."})
		return
	}

	reg, err := models.NewRegistration(form.FirstName, form.LastName, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{"Error": errorMessage(err)})
		return
	}

	user, err := s.store.Register(c.Request.Context(), reg)
	if err != nil {
		c.HTML(http.StatusOK, "signup.html", gin.H{"Error": errorMessage(err)})
		return
	}

	s.startSession(c, user.ID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) startSession(c *gin.Context, userID string) {
	token, err := utils.GenerateToken(userID)
	if err != nil {
		return
	}
	middleware.SetSessionCookie(c, token, config.Cfg.SessionTTLHours*3600)
}
