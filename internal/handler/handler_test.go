package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrms/config"
	"hrms/internal/core"
	"hrms/internal/database/client"
	"hrms/internal/database/fluentd/repository"
	"hrms/internal/database/mongodb/model"
	"hrms/internal/dto"
	"hrms/internal/middleware"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/password"
	"hrms/internal/pkg/token"
	"hrms/internal/service"
	"hrms/internal/service/servicetest"
	"hrms/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine    *gin.Engine
	employees *servicetest.EmployeeStore
	leaves    *servicetest.LeaveStore
	employee  *service.EmployeeService
}

type envelope struct {
	Success     bool            `json:"success"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Description string          `json:"description"`
}

// newTestServer 以 fake store 組出與 router 相同的路由（登入節流除外）
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conf := &config.Configuration{
		App:      config.App{Name: "hrms", Version: "test"},
		Security: config.Security{JWTSecret: "test-secret", BcryptCost: bcrypt.MinCost},
	}
	trace := &telemetry.Trace{}
	metric := &telemetry.Metric{}
	logger := zap.NewNop()
	clock := servicetest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	employees := servicetest.NewEmployeeStore(clock)
	leaves := servicetest.NewLeaveStore(clock)
	employeeService := service.NewEmployeeService(trace, logger, employees, &servicetest.Sequence{}, password.NewHasher(conf), conf)
	leaveService := service.NewLeaveService(trace, metric, logger, leaves, employees)
	dashboardService := service.NewDashboardService(trace, logger, employees, employeeService, leaveService)
	authService := service.NewAuthService(trace, logger, employeeService, token.NewManager(conf), &servicetest.Blacklist{})

	logs := repository.NewLogRepository(conf, client.NoopClient{})
	engine := gin.New()
	engine.Use(
		middleware.NewTraceEntry(trace, metric, conf).Handler(),
		middleware.NewRecovery(logger, trace, metric, conf, logs).ErrorHandler(),
		middleware.NewResponse(logger, trace, metric, conf, logs).FormatHandler(),
	)

	auth := middleware.NewAuth(logger, trace, authService).Handler()
	current := middleware.NewEmployee(logger, trace, employeeService).Handler()
	reviewer := middleware.NewRole(logger, trace).RequireReviewer()

	authHandler := NewAuthHandler(trace, authService)
	profileHandler := NewProfileHandler(trace, employeeService, leaveService)
	employeeHandler := NewEmployeeHandler(trace, employeeService, leaveService)
	leaveHandler := NewLeaveHandler(trace, leaveService)
	dashboardHandler := NewDashboardHandler(trace, dashboardService)

	engine.POST("/auth/login", authHandler.Login)
	engine.POST("/auth/logout", auth, authHandler.Logout)
	profile := engine.Group("/profile", auth, current)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.PUT("/password", profileHandler.ChangePassword)
	profile.GET("/leaves", profileHandler.Leaves)
	engine.POST("/leaves", auth, current, leaveHandler.Apply)

	hr := engine.Group("/hr", auth, current, reviewer)
	hr.GET("/dashboard", dashboardHandler.Summary)
	hr.GET("/employees", employeeHandler.List)
	hr.POST("/employees", employeeHandler.Create)
	hr.GET("/employees/:employeeID", employeeHandler.Get)
	hr.PUT("/employees/:employeeID", employeeHandler.Update)
	hr.DELETE("/employees/:employeeID", employeeHandler.Delete)
	hr.GET("/employees/:employeeID/leaves", employeeHandler.Leaves)
	hr.GET("/leaves", leaveHandler.List)
	hr.PATCH("/leaves/:leaveID/decision", leaveHandler.Decide)

	return &testServer{engine: engine, employees: employees, leaves: leaves, employee: employeeService}
}

func (s *testServer) addEmployee(t *testing.T, req dto.CreateEmployeeDto) *model.Employee {
	t.Helper()
	employee, err := s.employee.AddEmployee(context.Background(), &req)
	require.NoError(t, err)
	return employee
}

func (s *testServer) do(t *testing.T, method, path, accessToken string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var got envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), w.Body.String())
	return w.Code, got
}

func (s *testServer) login(t *testing.T, email, secret string) string {
	t.Helper()
	status, got := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": secret})
	require.Equal(t, http.StatusOK, status, got.Description)
	var res struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(got.Data, &res))
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func decodeData[T any](t *testing.T, got envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(got.Data, &out))
	return out
}

func TestLogin_ProfileAndLogout(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})

	accessToken := s.login(t, "JOHN@x.com", "password")

	status, got := s.do(t, http.MethodGet, "/profile", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Success)
	profile := decodeData[map[string]any](t, got)
	assert.Equal(t, "john@x.com", profile["email"])
	assert.NotContains(t, profile, "passwordHash")

	status, _ = s.do(t, http.MethodPost, "/auth/logout", accessToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, got = s.do(t, http.MethodGet, "/profile", accessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, cErr.INVALID_SESSION, got.Code)
}

func TestLogin_Failures(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})

	status, got := s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "john@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, cErr.INVALID_CREDENTIALS, got.Code)
	assert.False(t, got.Success)

	status, got = s.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, got.Code)
}

func TestProfile_RequiresToken(t *testing.T) {
	s := newTestServer(t)

	status, got := s.do(t, http.MethodGet, "/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, got.Success)
}

func TestProfile_UpdateAndChangePassword(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01", Department: "Engineering"})
	accessToken := s.login(t, "john@x.com", "password")

	status, got := s.do(t, http.MethodPut, "/profile", accessToken, gin.H{"phone": "0911", "department": "Sales"})
	require.Equal(t, http.StatusOK, status)
	updated := decodeData[map[string]any](t, got)
	assert.Equal(t, "0911", updated["phone"])
	// 個人資料不可改部門
	assert.Equal(t, "Engineering", updated["department"])

	status, got = s.do(t, http.MethodPut, "/profile/password", accessToken, gin.H{"currentPassword": "wrong", "newPassword": "secret123"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.WRONG_PASSWORD, got.Code)

	status, got = s.do(t, http.MethodPut, "/profile/password", accessToken, gin.H{"currentPassword": "password", "newPassword": "123"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, got.Code)

	status, _ = s.do(t, http.MethodPut, "/profile/password", accessToken, gin.H{"currentPassword": "password", "newPassword": "secret123"})
	require.Equal(t, http.StatusOK, status)
	s.login(t, "john@x.com", "secret123")
}

func TestHRRoutes_RejectEmployeeRole(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})
	accessToken := s.login(t, "john@x.com", "password")

	status, got := s.do(t, http.MethodGet, "/hr/employees", accessToken, nil)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, cErr.FORBIDDEN, got.Code)
	assert.Equal(t, "Access denied. HR role required.", got.Description)
}

func TestHREmployees_CRUD(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Jane Smith", Email: "hr@x.com", JoinDate: "2024-01-01", Role: core.RoleHR})
	accessToken := s.login(t, "hr@x.com", "password")

	status, got := s.do(t, http.MethodPost, "/hr/employees", accessToken, gin.H{
		"fullName": "Mary", "email": "mary@x.com", "joinDate": "2024-02-01", "department": "Sales",
	})
	require.Equal(t, http.StatusCreated, status)
	created := decodeData[map[string]any](t, got)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "EMP000002", created["employeeId"])

	status, got = s.do(t, http.MethodPost, "/hr/employees", accessToken, gin.H{
		"fullName": "Other", "email": "MARY@x.com", "joinDate": "2024-02-01",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.DUPLICATE_EMAIL, got.Code)

	// 預設排除 hr
	status, got = s.do(t, http.MethodGet, "/hr/employees", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]map[string]any](t, got), 1)

	status, got = s.do(t, http.MethodGet, "/hr/employees?excludeRole=", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]map[string]any](t, got), 2)

	status, got = s.do(t, http.MethodPut, "/hr/employees/"+id, accessToken, gin.H{"position": "Lead"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Lead", decodeData[map[string]any](t, got)["position"])

	status, got = s.do(t, http.MethodGet, "/hr/employees/not-an-id", accessToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.BAD_REQUEST_PARAMS, got.Code)

	status, _ = s.do(t, http.MethodDelete, "/hr/employees/"+id, accessToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, got = s.do(t, http.MethodGet, "/hr/employees/"+id, accessToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, cErr.NOT_FOUND, got.Code)
}

func TestLeaves_ApplyAndDecide(t *testing.T) {
	s := newTestServer(t)
	hr := s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Jane Smith", Email: "hr@x.com", JoinDate: "2024-01-01", Role: core.RoleHR})
	john := s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Mary", Email: "mary@x.com", JoinDate: "2024-01-01"})
	hrToken := s.login(t, "hr@x.com", "password")
	johnToken := s.login(t, "john@x.com", "password")

	apply := func(email string) gin.H {
		return gin.H{"email": email, "leaveType": "sick", "fromDate": "2024-02-01", "toDate": "2024-02-03", "reason": "flu"}
	}

	status, got := s.do(t, http.MethodPost, "/leaves", johnToken, apply("mary@x.com"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, cErr.FORBIDDEN, got.Code)
	assert.Empty(t, s.leaves.Leaves)

	status, got = s.do(t, http.MethodPost, "/leaves", johnToken, apply("John@x.com"))
	require.Equal(t, http.StatusCreated, status)
	leave := decodeData[map[string]any](t, got)
	assert.Equal(t, "pending", leave["status"])
	assert.Equal(t, float64(3), leave["days"])
	leaveID, _ := leave["id"].(string)

	// 人資可替他人申請
	status, _ = s.do(t, http.MethodPost, "/leaves", hrToken, apply("mary@x.com"))
	require.Equal(t, http.StatusCreated, status)

	status, got = s.do(t, http.MethodPatch, "/hr/leaves/"+leaveID+"/decision", hrToken, gin.H{"decision": "maybe"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.INVALID_DECISION, got.Code)

	status, got = s.do(t, http.MethodPatch, "/hr/leaves/"+leaveID+"/decision", hrToken, gin.H{"decision": "approved"})
	require.Equal(t, http.StatusOK, status)
	result := decodeData[dto.DecisionResultDto](t, got)
	assert.Equal(t, core.LeaveStatusApproved, result.Status)
	assert.Equal(t, core.LeaveStatusPending, result.PreviousStatus)
	assert.Equal(t, hr.ID.Hex(), result.ApprovedBy)
	assert.NotNil(t, result.ApprovedDate)

	status, got = s.do(t, http.MethodGet, "/profile/leaves", johnToken, nil)
	require.Equal(t, http.StatusOK, status)
	own := decodeData[[]map[string]any](t, got)
	require.Len(t, own, 1)
	assert.Equal(t, "approved", own[0]["status"])

	status, got = s.do(t, http.MethodGet, "/hr/employees/"+john.ID.Hex()+"/leaves", hrToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]map[string]any](t, got), 1)

	status, got = s.do(t, http.MethodGet, "/hr/leaves?status=pending", hrToken, nil)
	require.Equal(t, http.StatusOK, status)
	pending := decodeData[[]dto.LeaveListItemDto](t, got)
	require.Len(t, pending, 1)
	assert.Equal(t, "Mary", pending[0].EmployeeName)

	status, got = s.do(t, http.MethodGet, "/hr/leaves?status=cancelled", hrToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, got.Code)
}

func TestDashboard_Summary(t *testing.T) {
	s := newTestServer(t)
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Jane Smith", Email: "hr@x.com", JoinDate: "2024-01-01", Role: core.RoleHR, Department: "Human Resources"})
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01", Department: "Engineering"})
	accessToken := s.login(t, "hr@x.com", "password")

	status, got := s.do(t, http.MethodGet, "/hr/dashboard", accessToken, nil)

	require.Equal(t, http.StatusOK, status)
	summary := decodeData[dto.DashboardDto](t, got)
	assert.Equal(t, int64(1), summary.Stats.TotalEmployees)
	assert.Equal(t, int64(2), summary.Stats.TotalDepartments)
	require.Len(t, summary.RecentEmployees, 1)
	assert.Equal(t, "John Doe", summary.RecentEmployees[0].FullName)
	assert.Empty(t, summary.PendingLeaveRequests)
}

func TestEmployeeMiddleware_DeletedAccountIsInvalidSession(t *testing.T) {
	s := newTestServer(t)
	john := s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})
	accessToken := s.login(t, "john@x.com", "password")
	require.NoError(t, s.employee.DeleteEmployee(context.Background(), john.ID))

	status, got := s.do(t, http.MethodGet, "/profile", accessToken, nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, cErr.INVALID_SESSION, got.Code)
}

func TestHRRoutes_DemotedReviewerLosesAccess(t *testing.T) {
	s := newTestServer(t)
	hr := s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Jane Smith", Email: "hr@x.com", JoinDate: "2024-01-01", Role: core.RoleHR})
	accessToken := s.login(t, "hr@x.com", "password")

	status, _ := s.do(t, http.MethodGet, "/hr/employees", accessToken, nil)
	require.Equal(t, http.StatusOK, status)

	demoted := core.RoleEmployee
	_, err := s.employee.UpdateEmployee(context.Background(), hr.ID, &dto.UpdateEmployeeDto{Role: &demoted})
	require.NoError(t, err)

	status, got := s.do(t, http.MethodGet, "/hr/employees", accessToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, cErr.FORBIDDEN, got.Code)

	status, got = s.do(t, http.MethodPatch, "/hr/leaves/"+hr.ID.Hex()+"/decision", accessToken, gin.H{"decision": "approved"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, cErr.FORBIDDEN, got.Code)
}

func TestLeaves_ApplyFollowsCurrentEmail(t *testing.T) {
	s := newTestServer(t)
	john := s.addEmployee(t, dto.CreateEmployeeDto{FullName: "John Doe", Email: "john@x.com", JoinDate: "2024-01-01"})
	accessToken := s.login(t, "john@x.com", "password")

	renamed := "johnny@x.com"
	_, err := s.employee.UpdateEmployee(context.Background(), john.ID, &dto.UpdateEmployeeDto{Email: &renamed})
	require.NoError(t, err)
	// 舊 email 被新員工使用
	s.addEmployee(t, dto.CreateEmployeeDto{FullName: "Another John", Email: "john@x.com", JoinDate: "2024-01-01"})

	apply := func(email string) gin.H {
		return gin.H{"email": email, "leaveType": "personal", "fromDate": "2024-02-01", "toDate": "2024-02-01", "reason": "errand"}
	}

	status, got := s.do(t, http.MethodPost, "/leaves", accessToken, apply("john@x.com"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, cErr.FORBIDDEN, got.Code)
	assert.Empty(t, s.leaves.Leaves)

	status, _ = s.do(t, http.MethodPost, "/leaves", accessToken, apply("johnny@x.com"))
	assert.Equal(t, http.StatusCreated, status)
}
