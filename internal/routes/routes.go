package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"devconnect/internal/handlers"
	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/service"
	"devconnect/internal/token"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Users    repository.UserStore
	Profiles repository.ProfileStore
	Posts    repository.PostStore
	Tokens   *token.Manager
	Log      *logrus.Logger
}

func Register(app *fiber.App, d Deps) {
	auth := middleware.RequireAuth(d.Tokens)

	userSvc := service.NewUserService(d.Users, d.Tokens)
	profileSvc := service.NewProfileService(d.Profiles, d.Users, d.Posts)
	postSvc := service.NewPostService(d.Posts, d.Users)

	users := handlers.NewUserHandler(userSvc, d.Log)
	authH := handlers.NewAuthHandler(userSvc, d.Log)
	profiles := handlers.NewProfileHandler(profileSvc, d.Log)
	posts := handlers.NewPostHandler(postSvc, d.Log)

	api := app.Group("/api")

	api.Post("/users", users.Register)

	api.Post("/auth", authH.Login)
	api.Get("/auth", auth, authH.Current)

	pr := api.Group("/profile")
	pr.Get("/me", auth, profiles.Me)
	pr.Post("/", auth, profiles.Upsert)
	pr.Get("/", profiles.All)
	pr.Get("/user/:user_id", profiles.ByUser)
	pr.Delete("/", auth, profiles.DeleteAccount)

	po := api.Group("/posts", auth)
	po.Post("/", posts.Create)
	po.Get("/", posts.List)
	po.Put("/like/:id", posts.Like)
	po.Put("/unlike/:id", posts.Unlike)
	po.Post("/comment/:id", posts.AddComment)
	po.Delete("/comment/:id/:comment_id", posts.DeleteComment)
	po.Get("/:id", posts.Get)
	po.Delete("/:id", posts.Delete)
}
