package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/mmisoft/ecom/internal/analytics"
	"github.com/mmisoft/ecom/internal/client/config"
	"github.com/mmisoft/ecom/internal/client/gateway"
	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/images"
	"github.com/mmisoft/ecom/internal/client/otp"
	"github.com/mmisoft/ecom/internal/client/profiles"
	"github.com/mmisoft/ecom/internal/client/services"
	"github.com/mmisoft/ecom/internal/client/tokenstore"
	"github.com/mmisoft/ecom/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	log      logging.Logger
	userName string
	loggedIn bool
	reader   *bufio.Reader
}

// NewApp builds the full client stack from configuration: the local session
// store, the identity provider client, the optional profile and image
// backends, the analytics sink and the authentication façade on top.
func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewDefault(slog.LevelInfo)

	db, err := tokenstore.Open(ctx, c.LocalDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}
	tokens := tokenstore.NewSQLiteStore(db)

	provider := identity.NewHTTPClient(c.IdentityEndpoint, c.IdentityAPIKey, c.RequestTimeout)

	var repo profiles.Repository = profiles.NewMemoryRepository()
	if c.ProfilesDSN != "" {
		pdb, err := sql.Open("pgx", c.ProfilesDSN)
		if err != nil {
			return nil, err
		}
		repo = profiles.NewPostgresRepository(pdb)
	}

	var uploader images.Uploader = images.Disabled{}
	if c.S3.Bucket != "" {
		uploader = images.NewS3Uploader(images.Config{
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
			Bucket:       c.S3.Bucket,
			Region:       c.S3.Region,
			BaseEndpoint: c.S3.BaseEndpoint,
		})
	}

	var events analytics.Recorder = analytics.NewSlogRecorder(logger)
	if c.RedisAddr != "" {
		rdb, err := analytics.NewRedisClient(ctx, c.RedisAddr)
		if err != nil {
			logger.Warn(ctx, "analytics redis unreachable, falling back to log-only", "error", err)
		} else {
			events = analytics.NewRedisRecorder(rdb, logger)
		}
	}

	gw := gateway.New(provider, repo, uploader, events, logger)
	sim := otp.NewSimulator(logger)
	auth := services.NewAuthService(gw, sim, tokens, logger)

	return &App{
		config: c,
		auth:   auth,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// Run starts the interactive session. A valid stored session bypasses the
// login step.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
