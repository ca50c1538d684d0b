package repository

import (
	"context"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterRepository 以單一文件 $inc 產生遞增序號
type CounterRepository struct {
	collection *mongo.Collection
}

func NewCounterRepository(mongoClient *client.MongoClient) *CounterRepository {
	return &CounterRepository{
		collection: mongoClient.Collection(core.MongoCollectionCounters),
	}
}

// Next 原子遞增並回傳新值；序號不存在時從 1 開始
func (repository *CounterRepository) Next(contextValue context.Context, name string) (_ int64, returnedError error) {
	updateOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter model.Counter
	if returnedError = repository.collection.FindOneAndUpdate(
		contextValue,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		updateOptions,
	).Decode(&counter); returnedError != nil {
		return 0, returnedError
	}
	return counter.Seq, nil
}
