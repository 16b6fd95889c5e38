package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/corona-loader/schema"
)

func init() {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("corona")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	defer indexer.Close()

	indexer.IndexAll()

	err := migrateMongo()
	if nil != err {
		panic(err)
	}
}

// migrateMongo creates the collections up front; multi-document transactions
// cannot create collections implicitly on older servers.
func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	db := client.Database(viper.GetString("mongo.database"))
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(names))
	for _, n := range names {
		existing[n] = true
	}

	for _, c := range []string{schema.TotalsCollection, schema.CasesByLocationCollection} {
		if existing[c] {
			continue
		}
		fmt.Println("initialize collection", c)
		if err := db.RunCommand(ctx, bson.D{{Key: "create", Value: c}}).Err(); err != nil {
			return err
		}
	}

	return nil
}
