package service

import (
	"context"
	"time"

	"hrms/internal/core"
	"hrms/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeStore 員工資料存取；查無資料時回傳 mongo.ErrNoDocuments
type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Employee, error)
	List(ctx context.Context, filter model.EmployeeFilter) ([]*model.Employee, error)
	Count(ctx context.Context, filter model.EmployeeFilter) (int64, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update model.EmployeeUpdate) (*model.Employee, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type LeaveStore interface {
	Create(ctx context.Context, leave *model.LeaveRequest) (*model.LeaveRequest, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.LeaveRequest, error)
	List(ctx context.Context, filter model.LeaveFilter) ([]*model.LeaveRequest, error)
	UpdateDecision(ctx context.Context, id primitive.ObjectID, decision model.LeaveDecision) (*model.LeaveRequest, error)
	CountByStatus(ctx context.Context) (map[core.LeaveStatus]int64, error)
}

type SequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type TokenBlacklist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
