// Package seed loads the data a fresh installation needs: the first admin
// account and a default home text.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	authrepo "github.com/gustavoesucri/back-end-ifd/internal/domains/auth/repository"
	authservice "github.com/gustavoesucri/back-end-ifd/internal/domains/auth/service"
	"github.com/gustavoesucri/back-end-ifd/internal/domains/home"
	homerepo "github.com/gustavoesucri/back-end-ifd/internal/domains/home/repository"
	"github.com/gustavoesucri/back-end-ifd/pkg/database"
	"github.com/gustavoesucri/back-end-ifd/pkg/logger"
)

var DefaultHomeParagraphs = []string{
	"Bem-vindo ao site do Instituto. Aqui você acompanha nossas campanhas, projetos e notícias.",
}

type Options struct {
	AdminEmail     string
	AdminPassword  string
	HomeParagraphs []string
}

type Result struct {
	AdminCreated bool
	HomeCreated  bool
}

// Run applies every seed step in a single transaction.
func Run(ctx context.Context, pool *pgxpool.Pool, opts Options) (Result, error) {
	return database.WithTransactionResult(ctx, pool, func(tx pgx.Tx) (Result, error) {
		return Apply(ctx, authservice.NewAuthService(authrepo.NewPostgresRepository(tx), nil), homerepo.NewPostgresRepository(tx), opts)
	})
}

// Apply is Run without the transaction. Steps already satisfied are skipped.
func Apply(ctx context.Context, accounts authservice.ServiceInterface, homes home.Repository, opts Options) (Result, error) {
	var res Result

	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email != "" {
		if opts.AdminPassword == "" {
			return res, fmt.Errorf("admin password is required when an admin email is given")
		}
		created, err := accounts.EnsureAccount(ctx, email, opts.AdminPassword)
		if err != nil {
			return res, fmt.Errorf("seed admin account: %w", err)
		}
		res.AdminCreated = created
	}

	existing, err := homes.GetAll(ctx)
	if err != nil {
		return res, fmt.Errorf("list home texts: %w", err)
	}
	if len(existing) == 0 {
		paragraphs := opts.HomeParagraphs
		if len(paragraphs) == 0 {
			paragraphs = DefaultHomeParagraphs
		}
		if err := homes.Create(ctx, &home.HomeText{Paragrafos: paragraphs}); err != nil {
			return res, fmt.Errorf("seed home text: %w", err)
		}
		res.HomeCreated = true
	}

	logger.Info("Seed applied", map[string]interface{}{
		"admin_created": res.AdminCreated,
		"home_created":  res.HomeCreated,
	})
	return res, nil
}
