package configs

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
)

// ConnectDB dials MongoDB once and reuses the client for every caller.
func ConnectDB() *mongo.Client {
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var err error
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
		if err != nil {
			log.Fatal(err)
		}

		if err = client.Ping(ctx, nil); err != nil {
			log.Fatal(err)
		}

		log.Println("Connected to MongoDB")
	})
	return client
}

func GetCollection(collectionName string) *mongo.Collection {
	return ConnectDB().Database(EnvDBName()).Collection(collectionName)
}
