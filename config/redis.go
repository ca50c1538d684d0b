package config

import "time"

// Redis 登入節流與 token 黑名單
type Redis struct {
	Host     string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port     int    `mapstructure:"PORT" json:"port" yaml:"port"`
	Password string `mapstructure:"PASSWORD" json:"password" yaml:"password"`
	DB       int    `mapstructure:"DB" json:"db" yaml:"db"`
	// 0 使用 go-redis 預設值
	PoolSize       int `mapstructure:"POOL_SIZE" json:"pool_size" yaml:"pool_size"`
	DialTimeoutSec int `mapstructure:"DIAL_TIMEOUT_SEC" json:"dial_timeout_sec" yaml:"dial_timeout_sec"`
}

func (r Redis) DialTimeout() time.Duration {
	if r.DialTimeoutSec <= 0 {
		return 5 * time.Second
	}
	return time.Duration(r.DialTimeoutSec) * time.Second
}
