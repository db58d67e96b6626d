package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/pkordes/goal-tracker/migrations"
)

// DefaultMongoDatabase is used when the connection string names no database.
const DefaultMongoDatabase = "test"

// Conn is an open, verified connection to a goal store.
// It is constructed once at startup and passed explicitly to the layers that
// need it; nothing in the process holds it globally.
type Conn interface {
	// Goals returns the GoalRepo backed by this connection.
	Goals() GoalRepo

	// Ping checks that the store is still reachable.
	Ping(ctx context.Context) error

	// Close releases the connection.
	Close(ctx context.Context) error
}

// Connect opens a connection to the store named by uri and verifies it with a
// ping. The scheme selects the backend:
//
//	mongodb://, mongodb+srv://   MongoDB
//	postgres://, postgresql://   Postgres (embedded migrations are applied)
func Connect(ctx context.Context, uri string) (Conn, error) {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return nil, fmt.Errorf("repo.Connect: connection string has no scheme")
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return connectMongo(ctx, uri)
	case "postgres", "postgresql":
		return connectPostgres(ctx, uri)
	default:
		return nil, fmt.Errorf("repo.Connect: unsupported store scheme %q", scheme)
	}
}

// --- MongoDB ----------------------------------------------------------------

type mongoConn struct {
	client *mongo.Client
	goals  GoalRepo
}

func connectMongo(ctx context.Context, uri string) (Conn, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("repo.Connect: parse mongodb uri: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultMongoDatabase
	}

	// mongo.Connect does not dial; the ping below is what proves connectivity.
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("repo.Connect: mongodb client: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repo.Connect: mongodb ping: %w", err)
	}

	return &mongoConn{
		client: client,
		goals:  NewMongoGoalRepo(client.Database(dbName)),
	}, nil
}

func (c *mongoConn) Goals() GoalRepo { return c.goals }

func (c *mongoConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *mongoConn) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// --- Postgres ---------------------------------------------------------------

type pgConn struct {
	pool  *pgxpool.Pool
	goals GoalRepo
}

func connectPostgres(ctx context.Context, uri string) (Conn, error) {
	poolCfg, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return nil, fmt.Errorf("repo.Connect: parse postgres uri: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	// NewWithConfig does not open connections immediately; Ping does.
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("repo.Connect: postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Connect: postgres ping: %w", err)
	}
	if err := Migrate(ctx, uri); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.Connect: %w", err)
	}

	return &pgConn{pool: pool, goals: NewPgGoalRepo(pool)}, nil
}

// Migrate applies all pending embedded goose migrations to the Postgres
// database at uri. goose needs a database/sql handle, so a short-lived one is
// opened through the pgx stdlib driver and closed before returning.
func Migrate(ctx context.Context, uri string) error {
	sqlDB, err := sql.Open("pgx", uri)
	if err != nil {
		return fmt.Errorf("migrate: open: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return fmt.Errorf("migrate: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrate: up: %w", err)
	}
	return nil
}

func (c *pgConn) Goals() GoalRepo { return c.goals }

func (c *pgConn) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *pgConn) Close(_ context.Context) error {
	c.pool.Close()
	return nil
}
