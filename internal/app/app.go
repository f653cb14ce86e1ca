package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/nsflhq/nsfl-api/internal/config"
	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	"github.com/nsflhq/nsfl-api/internal/domain/contact"
	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/player"
	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/domain/subscriber"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
	"github.com/nsflhq/nsfl-api/internal/infrastructure/account/gatekeeper"
	"github.com/nsflhq/nsfl-api/internal/infrastructure/enrichment/youtube"
	cacherepo "github.com/nsflhq/nsfl-api/internal/infrastructure/repository/cache"
	"github.com/nsflhq/nsfl-api/internal/infrastructure/repository/memory"
	"github.com/nsflhq/nsfl-api/internal/infrastructure/repository/postgres"
	"github.com/nsflhq/nsfl-api/internal/interfaces/httpapi"
	"github.com/nsflhq/nsfl-api/internal/platform/cache"
	idgen "github.com/nsflhq/nsfl-api/internal/platform/id"
	"github.com/nsflhq/nsfl-api/internal/platform/logging"
	"github.com/nsflhq/nsfl-api/internal/platform/resilience"
	"github.com/nsflhq/nsfl-api/internal/usecase"
)

type repositories struct {
	matches     match.Repository
	teams       team.Repository
	players     player.Repository
	standings   standings.Repository
	blogs       blog.Repository
	highlights  highlight.Repository
	watchlive   watchlive.Repository
	sponsors    sponsor.Repository
	contacts    contact.Repository
	subscribers subscriber.Repository
}

// NewHTTPServer wires repositories, services and transport into one
// server. The returned cleanup closes the database connection when a
// postgres backend is configured.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store := cache.NewStore(cfg.CacheTTL)

	repos, cleanup, err := buildRepositories(cfg, store, logger)
	if err != nil {
		return nil, nil, err
	}

	gen := idgen.NewRandomGenerator()

	var statsFetcher usecase.VideoStatsFetcher = youtube.Disabled{}
	if cfg.YouTubeEnabled {
		statsFetcher = youtube.NewClient(youtube.ClientConfig{
			HTTPClient: &http.Client{Timeout: cfg.YouTubeTimeout},
			BaseURL:    cfg.YouTubeBaseURL,
			APIKey:     cfg.YouTubeAPIKey,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.YouTubeCircuitEnabled,
				FailureThreshold: cfg.YouTubeCircuitFailureCount,
				OpenTimeout:      cfg.YouTubeCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.YouTubeCircuitHalfOpenReq,
			},
			Logger: logger,
		})
	}

	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, gen, store, logger)
	teamSvc := usecase.NewTeamService(repos.teams, gen)
	playerSvc := usecase.NewPlayerService(repos.players, repos.teams, gen)
	standingsSvc := usecase.NewStandingsService(repos.standings, repos.teams, gen, store)
	blogSvc := usecase.NewBlogService(repos.blogs, gen)
	highlightSvc := usecase.NewHighlightService(repos.highlights, statsFetcher, gen, logger, cfg.HighlightRefreshWorkers)
	watchliveSvc := usecase.NewWatchliveService(repos.watchlive, gen)
	sponsorSvc := usecase.NewSponsorService(repos.sponsors, gen)
	contactSvc := usecase.NewContactService(repos.contacts, gen)
	subscriberSvc := usecase.NewSubscriberService(repos.subscribers, gen)

	verifier := gatekeeper.NewClient(gatekeeper.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.GatekeeperTimeout},
		BaseURL:        cfg.GatekeeperBaseURL,
		IntrospectPath: cfg.GatekeeperIntrospectPath,
		AdminKey:       cfg.GatekeeperAdminKey,
		VerdictTTL:     cfg.GatekeeperVerdictTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenReq,
		},
		Logger: logger,
	})

	handler := httpapi.NewHandler(
		matchSvc,
		teamSvc,
		playerSvc,
		standingsSvc,
		blogSvc,
		highlightSvc,
		watchliveSvc,
		sponsorSvc,
		contactSvc,
		subscriberSvc,
		cfg.MediaBaseURL,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

// buildRepositories picks the storage backend. An empty DB_URL serves
// the embedded sample league from memory, which keeps local frontend
// work free of any database setup.
func buildRepositories(cfg config.Config, store *cache.Store, logger *logging.Logger) (repositories, func() error, error) {
	noop := func() error { return nil }

	if cfg.DBURL == "" {
		logger.Info("storage backend", "mode", "memory")
		return repositories{
			matches:     memory.NewMatchRepository(memory.SeedMatches()),
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			standings:   memory.NewStandingsRepository(memory.SeedStandings()),
			blogs:       memory.NewBlogRepository(memory.SeedBlogs()),
			highlights:  memory.NewHighlightRepository(memory.SeedHighlights()),
			watchlive:   memory.NewWatchliveRepository(memory.SeedWatchlive()),
			sponsors:    memory.NewSponsorRepository(memory.SeedSponsors()),
			contacts:    memory.NewContactRepository(nil),
			subscribers: memory.NewSubscriberRepository(nil),
		}, noop, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("storage backend", "mode", "postgres", "db", dbNameFromURL(cfg.DBURL))

	repos := repositories{
		matches:     postgres.NewMatchRepository(db),
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		standings:   postgres.NewStandingsRepository(db),
		blogs:       postgres.NewBlogRepository(db),
		highlights:  postgres.NewHighlightRepository(db),
		watchlive:   postgres.NewWatchliveRepository(db),
		sponsors:    postgres.NewSponsorRepository(db),
		contacts:    postgres.NewContactRepository(db),
		subscribers: postgres.NewSubscriberRepository(db),
	}

	if cfg.CacheEnabled {
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.standings = cacherepo.NewStandingsRepository(repos.standings, store)
		repos.blogs = cacherepo.NewBlogRepository(repos.blogs, store)
		repos.highlights = cacherepo.NewHighlightRepository(repos.highlights, store)
		repos.watchlive = cacherepo.NewWatchliveRepository(repos.watchlive, store)
		repos.sponsors = cacherepo.NewSponsorRepository(repos.sponsors, store)
	}

	return repos, db.Close, nil
}
