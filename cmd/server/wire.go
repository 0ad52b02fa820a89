// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"bff_create_account/internal/account"
	"bff_create_account/internal/app"
	"bff_create_account/internal/catalog"
	"bff_create_account/internal/config"
	"bff_create_account/internal/directory"
	"bff_create_account/internal/identity"
	"bff_create_account/internal/provisioning"
	"bff_create_account/internal/userinfo"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,
		provideDatabase,
		provideMetrics,

		// Outbound adapters
		directory.NewGORMFacade,
		provisioning.NewClient,
		wire.Bind(new(account.Gateway), new(*provisioning.Client)),
		identity.NewResolver,
		wire.Bind(new(identity.UserIDResolver), new(*identity.Resolver)),

		// Modules
		account.NewService,
		wire.Bind(new(account.Service), new(*account.ServiceImplementation)),
		account.NewHandler,
		catalog.NewDirectoryRepository,
		catalog.NewService,
		wire.Bind(new(catalog.Service), new(*catalog.ServiceImplementation)),
		catalog.NewHandler,
		userinfo.NewDirectoryRepository,
		userinfo.NewService,
		wire.Bind(new(userinfo.Service), new(*userinfo.ServiceImplementation)),
		userinfo.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
