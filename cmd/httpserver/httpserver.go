// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-biblio/biblio/internal/bookdelivery"
	"github.com/go-biblio/biblio/internal/bookrepo"
	"github.com/go-biblio/biblio/internal/bookservice"
	"github.com/go-biblio/biblio/internal/borrowingdelivery"
	"github.com/go-biblio/biblio/internal/borrowingrepo"
	"github.com/go-biblio/biblio/internal/borrowingservice"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/internal/middleware"
	"github.com/go-biblio/biblio/internal/sessiondelivery"
	"github.com/go-biblio/biblio/internal/sessionrepo"
	"github.com/go-biblio/biblio/internal/sessionservice"
	"github.com/go-biblio/biblio/internal/userdelivery"
	"github.com/go-biblio/biblio/internal/userrepo"
	"github.com/go-biblio/biblio/internal/userservice"
	"github.com/go-biblio/biblio/pkg/configpkg"
	"github.com/go-biblio/biblio/pkg/genrepkg"
	"github.com/go-biblio/biblio/pkg/tokenpkg"
)

// Server holds the router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoMem()
	bookRepo := bookrepo.NewRepoMem()
	borrowingRepo := borrowingrepo.NewRepoMem()
	sessionRepo := sessionrepo.NewRepoMem()

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	bookService := bookservice.New(bookRepo)
	borrowingService := borrowingservice.New(borrowingRepo, bookService)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)

	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	ctx := logger.WithContext(context.Background())
	if _, err := userService.Create(ctx,
		config.AdminUsername, config.AdminPassword,
		"Administrator", config.AdminUsername+"@biblio.local",
		domain.RoleEmployee,
	); err != nil {
		return nil, errors.New("cannot seed admin user")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	bookHandler := bookdelivery.NewHandler(bookService)
	borrowingHandler := borrowingdelivery.NewHandler(borrowingService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/books", bookHandler.Search)
	authRoutes.GET("/books/available", bookHandler.ListAvailable)
	authRoutes.GET("/books/:isbn", bookHandler.Get)

	authRoutes.POST("/borrowings", borrowingHandler.Borrow)
	authRoutes.GET("/borrowings", borrowingHandler.List)
	authRoutes.GET("/borrowings/:isbn", borrowingHandler.Get)
	authRoutes.DELETE("/borrowings/:isbn", borrowingHandler.Return)

	employeeRoutes := engine.Group("/").Use(
		middleware.AuthMiddleware(sessionService.TokenMaker),
		middleware.RequireEmployee(userService),
	)

	employeeRoutes.POST("/users", userHandler.Create)
	employeeRoutes.POST("/books", bookHandler.Create)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("genre", genrepkg.ValidGenre)
		if err != nil {
			return nil, errors.New("cannot register genre validator")
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
