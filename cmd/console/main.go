package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/go-biblio/biblio/internal/bookrepo"
	"github.com/go-biblio/biblio/internal/bookservice"
	"github.com/go-biblio/biblio/internal/borrowingrepo"
	"github.com/go-biblio/biblio/internal/borrowingservice"
	"github.com/go-biblio/biblio/internal/console"
	"github.com/go-biblio/biblio/internal/domain"
	"github.com/go-biblio/biblio/internal/middleware"
	"github.com/go-biblio/biblio/internal/userrepo"
	"github.com/go-biblio/biblio/internal/userservice"
	"github.com/go-biblio/biblio/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)
	ctx := logger.WithContext(context.Background())

	userService := userservice.New(userrepo.NewRepoMem())
	bookService := bookservice.New(bookrepo.NewRepoMem())
	borrowingService := borrowingservice.New(borrowingrepo.NewRepoMem(), bookService)

	if _, err := userService.Create(ctx,
		config.AdminUsername, config.AdminPassword,
		"Administrator", config.AdminUsername+"@biblio.local",
		domain.RoleEmployee,
	); err != nil {
		logger.Fatal().Err(err).Msg("cannot seed admin user")
	}

	c := console.New(os.Stdin, os.Stdout, userService, bookService, borrowingService)

	if err := c.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("console stopped")
	}
}
