package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bookface/config"
	"bookface/database"
	"bookface/handlers"
	"bookface/middleware"
	"bookface/store"
)

func main() {
	config.Load()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/images", "./public/images")

	h := handlers.New(store.New(database.DB))

	r.GET("/", h.Home)
	r.GET("/login", middleware.RedirectIfAuth(), h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/signup", middleware.RedirectIfAuth(), h.ShowSignup)
	r.POST("/signup", h.Signup)
	r.GET("/logout", h.Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/dashboard", h.Dashboard)
		authed.POST("/create-post", h.CreatePost)
		authed.POST("/delete-post", h.DeletePost)
		authed.POST("/like-post", h.LikePost)
		authed.POST("/add-comment", h.AddComment)

		authed.GET("/friends", h.FriendsPage)
		authed.POST("/send-friend-request", h.SendFriendRequest)
		authed.POST("/accept-friend", h.AcceptFriend)
		authed.POST("/decline-friend", h.DeclineFriend)
		authed.POST("/remove-friend", h.RemoveFriend)

		authed.GET("/messages", h.MessagesPage)
		authed.POST("/send-message", h.SendMessage)

		authed.GET("/profile", h.ProfilePage)
		authed.POST("/update-profile", h.UpdateProfile)
	}

	log.Printf("Server starting on %s", config.Cfg.ServerAddr)
	if err := r.Run(config.Cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
