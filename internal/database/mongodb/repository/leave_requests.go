package repository

import (
	"context"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type LeaveRequestRepository struct {
	logger     *zap.Logger
	collection *mongo.Collection
}

func NewLeaveRequestRepository(logger *zap.Logger, mongoClient *client.MongoClient) *LeaveRequestRepository {
	repository := &LeaveRequestRepository{
		logger:     logger,
		collection: mongoClient.Collection(core.MongoCollectionLeaveRequests),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *LeaveRequestRepository) ensureIndexes(contextValue context.Context) error {
	if _, err := repository.collection.Indexes().CreateMany(contextValue, model.LeaveRequestIndexes); err != nil {
		repository.logger.Error("[Mongo] create indexes failed",
			zap.String("collection", repository.collection.Name()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (repository *LeaveRequestRepository) Create(contextValue context.Context, leave *model.LeaveRequest) (_ *model.LeaveRequest, returnedError error) {
	nowUTC := time.Now().UTC()
	if leave.ID.IsZero() {
		leave.ID = primitive.NewObjectID()
	}
	leave.CreatedAt = nowUTC
	leave.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, leave)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	leave.ID = objectID
	return leave, nil
}

func (repository *LeaveRequestRepository) GetByID(contextValue context.Context, leaveIdentifier primitive.ObjectID) (_ *model.LeaveRequest, returnedError error) {
	var leave model.LeaveRequest
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": leaveIdentifier}).Decode(&leave); returnedError != nil {
		return nil, returnedError
	}
	return &leave, nil
}

// List 依 createdAt 倒序（最新在前）
func (repository *LeaveRequestRepository) List(contextValue context.Context, filter model.LeaveFilter) (_ []*model.LeaveRequest, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, findError := repository.collection.Find(contextValue, filter.ToBson(), findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := make([]*model.LeaveRequest, 0)
	if returnedError = cursor.All(contextValue, &results); returnedError != nil {
		return nil, returnedError
	}
	return results, nil
}

// UpdateDecision 不檢查先前狀態，重複審核會直接覆寫
func (repository *LeaveRequestRepository) UpdateDecision(contextValue context.Context, leaveIdentifier primitive.ObjectID, decision model.LeaveDecision) (_ *model.LeaveRequest, returnedError error) {
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": decision}

	var leave model.LeaveRequest
	if returnedError = repository.collection.FindOneAndUpdate(contextValue, bson.M{"_id": leaveIdentifier}, withUpdatedAt(update), updateOptions).Decode(&leave); returnedError != nil {
		return nil, returnedError
	}
	return &leave, nil
}

// CountByStatus 以 $group 聚合各狀態數量；沒有資料的狀態不會出現在結果中
func (repository *LeaveRequestRepository) CountByStatus(contextValue context.Context) (_ map[core.LeaveStatus]int64, returnedError error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var rows []model.LeaveStatusCount
	if returnedError = cursor.All(contextValue, &rows); returnedError != nil {
		return nil, returnedError
	}
	counts := make(map[core.LeaveStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
