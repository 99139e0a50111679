package database

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var credentialsPattern = regexp.MustCompile(`//[^:/@]+:[^@]+@`)

// MaskURI hides the user and password of a connection string.
func MaskURI(uri string) string {
	return credentialsPattern.ReplaceAllString(uri, "//****:****@")
}

// MongoOptions configures the document-store client. Zero values fall back to the defaults below.
type MongoOptions struct {
	URI                    string
	Database               string
	Collection             string
	MinPoolSize            uint64
	MaxPoolSize            uint64
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
}

const (
	defaultMinPoolSize            = 5
	defaultMaxPoolSize            = 10
	defaultServerSelectionTimeout = 5 * time.Second
	defaultSocketTimeout          = 45 * time.Second
)

func (o MongoOptions) clientOptions(monitor *event.PoolMonitor) *options.ClientOptions {
	minPool, maxPool := o.MinPoolSize, o.MaxPoolSize
	if minPool == 0 {
		minPool = defaultMinPoolSize
	}
	if maxPool == 0 {
		maxPool = defaultMaxPoolSize
	}
	selection, socket := o.ServerSelectionTimeout, o.SocketTimeout
	if selection <= 0 {
		selection = defaultServerSelectionTimeout
	}
	if socket <= 0 {
		socket = defaultSocketTimeout
	}

	return options.Client().
		ApplyURI(o.URI).
		SetMinPoolSize(minPool).
		SetMaxPoolSize(maxPool).
		SetServerSelectionTimeout(selection).
		SetSocketTimeout(socket).
		SetWriteConcern(writeconcern.Majority()).
		SetRetryWrites(true).
		SetPoolMonitor(monitor)
}

type dialFunc func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error)

// Connector owns the process-wide document-store client. It connects lazily and
// every caller after the first reuses the same client.
type Connector struct {
	opts   MongoOptions
	logger *slog.Logger
	dial   dialFunc

	mu     sync.Mutex
	client *mongo.Client
}

// NewConnector creates a connector. Nothing is dialled until Connect.
func NewConnector(opts MongoOptions, logger *slog.Logger) *Connector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Connector{
		opts:   opts,
		logger: logger.With(slog.String("component", "mongo")),
		dial:   mongo.Connect,
	}
}

// Connect returns the cached client, or dials and verifies a new one.
func (c *Connector) Connect(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.opts.URI == "" {
		return nil, fmt.Errorf("%w: MONGODB_URI is not set", apperrors.ErrConfiguration)
	}

	masked := MaskURI(c.opts.URI)
	c.logger.Info("Connecting to MongoDB", slog.String("uri", masked))

	client, err := c.dial(ctx, c.opts.clientOptions(c.poolMonitor()))
	if err != nil {
		c.logger.Error("MongoDB connection error", slog.String("uri", masked), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: connecting to mongodb: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		c.logger.Error("MongoDB connection error", slog.String("uri", masked), slog.String("error", err.Error()))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: pinging mongodb: %v", apperrors.ErrStoreUnavailable, err)
	}

	c.logger.Info("MongoDB connected", slog.String("uri", masked))
	c.client = client
	return client, nil
}

// Collection connects if needed and returns the configured entry collection.
func (c *Connector) Collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.opts.Database).Collection(c.opts.Collection), nil
}

// Ping reports whether the store answers.
func (c *Connector) Ping(ctx context.Context) error {
	client, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Disconnect closes the client. A later Connect dials again.
func (c *Connector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	if err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

func (c *Connector) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionReady:
				c.logger.Debug("MongoDB connection ready", slog.String("address", evt.Address))
			case event.PoolCleared:
				c.logger.Warn("MongoDB connection pool cleared", slog.String("address", evt.Address))
			case event.PoolClosedEvent:
				c.logger.Info("MongoDB disconnected", slog.String("address", evt.Address))
			}
		},
	}
}
