package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to reach the document store.
type Config struct {
	URI      string
	Database string
	Username string
	Password string
	Timeout  time.Duration
}

// Open creates the process-wide client and selects the database. The
// driver connects lazily, so Open only fails on bad configuration; use Ping
// to check reachability. The returned handles are safe for concurrent use
// and meant to be reused by every request.
func Open(cfg Config) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.Username != "" {
		opts.SetAuth(options.Credential{Username: cfg.Username, Password: cfg.Password})
	}
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// Ping verifies the deployment answers within the default timeout.
func Ping(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

// Pinger adapts Ping to a readiness check.
func Pinger(db *mongo.Database) func(context.Context) error {
	return func(ctx context.Context) error {
		return Ping(ctx, db)
	}
}

// EnsureIndexes creates the lookup indexes the API filters on. email is
// indexed but not unique: duplicate accounts are prevented by the
// registration flow, not the store.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string]string{
		collectionUsers: "email",
		collectionJoins: "email",
		collectionCamps: "campName",
	}
	for coll, field := range specs {
		model := mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("index %s.%s: %w", coll, field, err)
		}
	}
	return nil
}
