package error

import (
	"errors"
	"net/http"
)

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

// From 非 *Error 一律視為 500
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServer(err.Error())
}

// HasCode 判斷 err 是否為指定錯誤碼的 *Error
func HasCode(err error, errorCode int) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.errorCode == errorCode
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request/body", errorDesc)
}

// InvalidID 路徑上的 ID 不是合法的 ObjectID
func InvalidID(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request/params", errorDesc)
}

func InvalidInput(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "invalid-input", errorDesc)
}

func DuplicateEmail(errorDesc string) *Error {
	return New(http.StatusBadRequest, DUPLICATE_EMAIL, "duplicate-email", errorDesc)
}

func InvalidDecision(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_DECISION, "invalid-decision", errorDesc)
}

func WrongPassword(errorDesc string) *Error {
	return New(http.StatusBadRequest, WRONG_PASSWORD, "wrong-password", errorDesc)
}

func BadRequestHeaders(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_HEADERS, "bad-request-headers", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func InvalidCredentials(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_CREDENTIALS, "invalid-credentials", errorDesc)
}

func Forbidden(errorDesc string) *Error {
	return New(http.StatusForbidden, FORBIDDEN, "forbidden", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string) *Error {
	return New(http.StatusNotFound, NOT_FOUND, "not-found", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Error() string {
	return e.errorMsg
}

// MapHttpStatusToError handler 只設定 status 而未帶錯誤時使用
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return ValidateErr(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusTooManyRequests:
		return RateLimitExceeded(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
