package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
	replaceTimeout = time.Minute
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	CasesStore
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// Connect - connect a mongo client and wait for the server to answer a ping,
// Connect alone does not reach the server
func Connect(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.NewClient(opts)
	if nil != err {
		return nil, err
	}

	if err := client.Connect(ctx); nil != err {
		return nil, err
	}

	if err := client.Ping(ctx, nil); nil != err {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
