package app

import (
	"context"
	"database/sql"
	"time"
	apiMiddleware "trading_game/internal/api/middleware"
	statsAPI "trading_game/internal/api/stats"
	"trading_game/internal/config"
	"trading_game/internal/config/env"
	"trading_game/internal/logger"
	"trading_game/internal/repository"
	"trading_game/internal/repository/stats_memory_repo"
	"trading_game/internal/repository/stats_repo"
	"trading_game/internal/repository/stats_sqlite_repo"
	"trading_game/internal/service"
	"trading_game/internal/service/stats"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	log    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	storeCfg config.StoreConfig
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool
	sqliteDB *sql.DB

	// Stats bits
	statsRepo repository.StatsRepository
	statsServ service.StatsService
	statsHand *statsAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		log, err := logger.New(sp.LogCfg().Level(), sp.LogCfg().Development())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = log
	}
	return sp.log
}

func (sp *ServiceProvider) StoreCfg() config.StoreConfig {
	if sp.storeCfg == nil {
		cfg, err := env.NewStoreConfig()
		if err != nil {
			panic("failed to get store config: " + err.Error())
		}
		sp.storeCfg = cfg
	}
	return sp.storeCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		err = stats_repo.Migrate(ctx, dbc)
		if err != nil {
			panic("failed to migrate db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) SQLiteDB(ctx context.Context) *sql.DB {
	if sp.sqliteDB == nil {
		db, err := stats_sqlite_repo.Open(ctx, sp.StoreCfg().SQLitePath())
		if err != nil {
			panic("failed to open sqlite: " + err.Error())
		}
		sp.sqliteDB = db
	}
	return sp.sqliteDB
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		var (
			m   *manager.Manager
			err error
		)

		switch sp.StoreCfg().Driver() {
		case config.StoreDriverPostgres:
			m, err = manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		case config.StoreDriverSQLite:
			m, err = manager.New(trmsql.NewDefaultFactory(sp.SQLiteDB(ctx)))
		default:
			sp.txManager = stats_memory_repo.NewTxManager()
			return sp.txManager
		}
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) StatsRepository(ctx context.Context) repository.StatsRepository {
	if sp.statsRepo == nil {
		switch sp.StoreCfg().Driver() {
		case config.StoreDriverPostgres:
			sp.statsRepo = stats_repo.NewStatsRepository(sp.DBClient(ctx))
		case config.StoreDriverSQLite:
			sp.statsRepo = stats_sqlite_repo.NewStatsRepository(sp.SQLiteDB(ctx))
		default:
			sp.statsRepo = stats_memory_repo.NewStatsRepository()
		}
		sp.Logger().Info("stats store ready", zap.String("driver", sp.StoreCfg().Driver()))
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) StatsService(ctx context.Context) service.StatsService {
	if sp.statsServ == nil {
		sp.statsServ = stats.NewStatsService(sp.StatsRepository(ctx), sp.TXManager(ctx))
	}
	return sp.statsServ
}

func (sp *ServiceProvider) StatsHandler(ctx context.Context) *statsAPI.Handler {
	if sp.statsHand == nil {
		sp.statsHand = statsAPI.NewHandler(statsAPI.HandlerDeps{
			Serv:   sp.StatsService(ctx),
			Logger: sp.Logger().Named("stats"),
		})
	}
	return sp.statsHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(apiMiddleware.RequestLogger(sp.Logger().Named("http")))
		r.Use(middleware.Recoverer)
		r.Use(middleware.Timeout(requestTimeout))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Stats endpoints
		statsHandler := sp.StatsHandler(ctx)
		r.Route("/stats", statsHandler.Register)
		r.Route("/api/stats", statsHandler.Register)
		r.Get("/health", statsHandler.Health)

		sp.router = r
	}

	return sp.router
}

// Close Освобождает соединения с базой
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.sqliteDB != nil {
		if err := sp.sqliteDB.Close(); err != nil {
			sp.Logger().Warn("failed to close sqlite", zap.Error(err))
		}
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
