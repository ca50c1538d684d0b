package response

import (
	"errors"
	"net/http"

	cErr "hrms/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

// Response 統一回應格式；失敗時 Message 為錯誤種類、Description 為說明
type Response struct {
	RequestID   string `json:"requestID"`
	Success     bool   `json:"success"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func Create(c *gin.Context, data any) {
	c.Status(http.StatusCreated)
	setData(c, data, "Create Success")
}

func Success(c *gin.Context, data any) {
	setData(c, data, "Request Success")
}

// setData 交由 Response middleware 封裝輸出
func setData(c *gin.Context, data any, message string) {
	if msg, ok := data.(gin.H); ok {
		if s, ok := msg["message"].(string); ok && s != "" {
			message = s
			delete(msg, "message")
		}
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, requestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   requestID,
		Success:     false,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, requestID string, err error) {
	var appErr *cErr.Error
	if errors.As(err, &appErr) {
		Fail(c, requestID, appErr.HttpCode(), appErr.ErrorCode(), appErr.Error(), appErr.ErrorDesc())
		return
	}
	Fail(c, requestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "internal-server-error", err.Error())
}
