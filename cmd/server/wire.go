// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"careerhub_backend/internal/app"
	"careerhub_backend/internal/config"
	"careerhub_backend/internal/firebase"
	"careerhub_backend/internal/jobs"
	"careerhub_backend/internal/organization"
	"careerhub_backend/internal/platform/database"
	"careerhub_backend/internal/platform/logger"
	"careerhub_backend/internal/profile"
	"careerhub_backend/internal/rolecache"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		database.NewGORM,

		// Authentication context
		firebase.NewFirebaseService,

		// Organization: slug allocation lives inside the manager
		organization.NewGORMRepository,
		organization.NewManager,
		organization.NewHandler,

		// Profile: the role assignment coordinator
		profile.NewGORMRepository,
		profile.NewService,
		profile.NewHandler,

		// Role cache reads the store through the profile service
		wire.Bind(new(rolecache.Lookup), new(*profile.Service)),
		rolecache.NewResolver,

		// Jobs
		jobs.NewOrgSweepJob,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
