package router

import (
	"hrms/internal/handler"
	"hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AuthRouter 登入 / 登出與個人資料
type AuthRouter struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	leaveHandler       *handler.LeaveHandler
	auth               *middleware.Auth
	employeeMiddleware *middleware.Employee
	loginThrottle      *middleware.LoginThrottle
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	leaveHandler *handler.LeaveHandler,
	auth *middleware.Auth,
	employeeMiddleware *middleware.Employee,
	loginThrottle *middleware.LoginThrottle,
) *AuthRouter {
	return &AuthRouter{
		authHandler:        authHandler,
		profileHandler:     profileHandler,
		leaveHandler:       leaveHandler,
		auth:               auth,
		employeeMiddleware: employeeMiddleware,
		loginThrottle:      loginThrottle,
	}
}

func (ar *AuthRouter) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", ar.loginThrottle.Handler(), ar.authHandler.Login)
		authGroup.POST("/logout", ar.auth.Handler(), ar.authHandler.Logout)
	}

	profile := r.Group("/profile", ar.auth.Handler(), ar.employeeMiddleware.Handler())
	{
		profile.GET("", ar.profileHandler.Get)
		profile.PUT("", ar.profileHandler.Update)
		profile.PUT("/password", ar.profileHandler.ChangePassword)
		profile.GET("/leaves", ar.profileHandler.Leaves)
	}

	leaves := r.Group("/leaves", ar.auth.Handler(), ar.employeeMiddleware.Handler())
	{
		leaves.POST("", ar.leaveHandler.Apply)
	}
}
