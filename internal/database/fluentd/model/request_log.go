package model

type RequestLog struct {
	RequestID  string `bson:"request_id" json:"request_id"`
	Path       string `bson:"path" json:"path"`
	Method     string `bson:"method" json:"method"`
	EmployeeID string `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	Body       string `bson:"body,omitempty" json:"body,omitempty"`
	ClientIP   string `bson:"client_ip,omitempty" json:"client_ip,omitempty"`
	UserAgent  string `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Version    string `bson:"version,omitempty" json:"version,omitempty"`
	RequestTS  string `bson:"request_ts" json:"request_ts"`
	LoggedAt   string `bson:"logged_at" json:"logged_at"`
}
