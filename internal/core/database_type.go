package core

import "go.mongodb.org/mongo-driver/bson"

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

// MongoDBHRMS 未設定 MONGODB__DATABASE 時使用
const MongoDBHRMS MongoDatabaseName = "hrms"

const (
	MongoCollectionEmployees     MongoCollection = "employees"
	MongoCollectionLeaveRequests MongoCollection = "leave_requests"
	MongoCollectionCounters      MongoCollection = "counters"
)

// counters 集合內的序號名稱
const CounterEmployeeID = "employeeId"

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyBlacklist    RedisKey = "blacklist_token" // 已登出的 token jti
	RedisKeyLoginAttempt RedisKey = "login_attempt"   // 登入節流計數
	RedisKeyServerName   RedisKey = "hrms"
)

// ─── Fluentd ───────────────────────────────────────────────────────────────────

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
)

type ListOptions struct {
	Filter bson.M `json:"filter,omitempty" bson:"filter,omitempty"`
	Limit  int64  `json:"limit,omitempty" bson:"limit,omitempty"`
}
