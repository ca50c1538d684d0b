package config

import "time"

type Security struct {
	// HS256 簽章用
	JWTSecret       string `mapstructure:"JWT_SECRET" json:"jwt_secret" yaml:"jwt_secret"`
	TokenTTLMinutes int64  `mapstructure:"TOKEN_TTL_MINUTES" json:"token_ttl_minutes" yaml:"token_ttl_minutes"`
	// 新增員工時的預設密碼（儲存前會 hash）
	DefaultPassword string `mapstructure:"DEFAULT_PASSWORD" json:"default_password" yaml:"default_password"`
	BcryptCost      int    `mapstructure:"BCRYPT_COST" json:"bcrypt_cost" yaml:"bcrypt_cost"`
	// 登入節流：每個 client IP 在 window 內最多嘗試次數
	LoginMaxAttempts int   `mapstructure:"LOGIN_MAX_ATTEMPTS" json:"login_max_attempts" yaml:"login_max_attempts"`
	LoginWindowSec   int64 `mapstructure:"LOGIN_WINDOW_SEC" json:"login_window_sec" yaml:"login_window_sec"`
}

const (
	defaultTokenTTL         = 60 * time.Minute
	defaultPassword         = "password"
	defaultLoginMaxAttempts = 5
	defaultLoginWindowSec   = 300
)

func (s Security) TokenTTL() time.Duration {
	if s.TokenTTLMinutes <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(s.TokenTTLMinutes) * time.Minute
}

func (s Security) InitialPassword() string {
	if s.DefaultPassword == "" {
		return defaultPassword
	}
	return s.DefaultPassword
}

// LoginLimit 回傳 (次數, 視窗秒數)，未設定時使用預設值
func (s Security) LoginLimit() (int, int64) {
	attempts, window := s.LoginMaxAttempts, s.LoginWindowSec
	if attempts <= 0 {
		attempts = defaultLoginMaxAttempts
	}
	if window <= 0 {
		window = defaultLoginWindowSec
	}
	return attempts, window
}
