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

type EmployeeRepository struct {
	logger     *zap.Logger
	collection *mongo.Collection
}

func NewEmployeeRepository(logger *zap.Logger, mongoClient *client.MongoClient) *EmployeeRepository {
	repository := &EmployeeRepository{
		logger:     logger,
		collection: mongoClient.Collection(core.MongoCollectionEmployees),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

// email 唯一索引失敗時，並發新增同 email 無法被擋下
func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	if _, err := repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes); err != nil {
		repository.logger.Error("[Mongo] create indexes failed",
			zap.String("collection", repository.collection.Name()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	employee.CreatedAt = nowUTC
	employee.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, employee)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	employee.ID = objectID
	return employee, nil
}

func (repository *EmployeeRepository) GetByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// GetByEmail email 需已正規化為小寫
func (repository *EmployeeRepository) GetByEmail(contextValue context.Context, email string) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"email": email}).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// GetByIDs 批次查詢，找不到的 id 直接略過
func (repository *EmployeeRepository) GetByIDs(contextValue context.Context, employeeIdentifiers []primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	if len(employeeIdentifiers) == 0 {
		return nil, nil
	}
	return repository.find(contextValue, bson.M{"_id": bson.M{"$in": employeeIdentifiers}}, options.Find())
}

// List 依 createdAt 倒序
func (repository *EmployeeRepository) List(contextValue context.Context, filter model.EmployeeFilter) (_ []*model.Employee, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}
	return repository.find(contextValue, filter.ToBson(), findOptions)
}

func (repository *EmployeeRepository) find(contextValue context.Context, filter bson.M, findOptions *options.FindOptions) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := make([]*model.Employee, 0)
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

// Count 依條件計數（忽略 Limit）
func (repository *EmployeeRepository) Count(contextValue context.Context, filter model.EmployeeFilter) (_ int64, returnedError error) {
	return repository.collection.CountDocuments(contextValue, filter.ToBson())
}

// DistinctDepartments 回傳非空的部門名稱
func (repository *EmployeeRepository) DistinctDepartments(contextValue context.Context) (_ []string, returnedError error) {
	values, distinctError := repository.collection.Distinct(contextValue, "department", bson.M{"department": bson.M{"$nin": bson.A{nil, ""}}})
	if distinctError != nil {
		return nil, distinctError
	}
	departments := make([]string, 0, len(values))
	for _, value := range values {
		if department, ok := value.(string); ok && department != "" {
			departments = append(departments, department)
		}
	}
	return departments, nil
}

// UpdateByID 回傳更新後的文件；無符合時回傳 mongo.ErrNoDocuments
func (repository *EmployeeRepository) UpdateByID(contextValue context.Context, employeeIdentifier primitive.ObjectID, update model.EmployeeUpdate) (_ *model.Employee, returnedError error) {
	if update.IsEmpty() {
		return repository.GetByID(contextValue, employeeIdentifier)
	}
	return repository.findOneAndUpdate(contextValue, employeeIdentifier, bson.M{"$set": update})
}

func (repository *EmployeeRepository) UpdatePassword(contextValue context.Context, employeeIdentifier primitive.ObjectID, passwordHash string) (returnedError error) {
	_, returnedError = repository.findOneAndUpdate(contextValue, employeeIdentifier, bson.M{"$set": bson.M{"passwordHash": passwordHash}})
	return returnedError
}

func (repository *EmployeeRepository) findOneAndUpdate(contextValue context.Context, employeeIdentifier primitive.ObjectID, update bson.M) (_ *model.Employee, returnedError error) {
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee model.Employee
	if returnedError = repository.collection.FindOneAndUpdate(contextValue, bson.M{"_id": employeeIdentifier}, withUpdatedAt(update), updateOptions).Decode(&employee); returnedError != nil {
		return nil, returnedError
	}
	return &employee, nil
}

// DeleteByID 不連動刪除請假單；無符合時回傳 mongo.ErrNoDocuments
func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (returnedError error) {
	result, deleteError := repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	if deleteError != nil {
		return deleteError
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
