package config

type Fluentd struct {
	// 關閉時改用 noop poster，不建立 forward 連線
	Enabled   bool   `mapstructure:"ENABLED" json:"enabled" yaml:"enabled"`
	Host      string `mapstructure:"HOST" json:"host" yaml:"host"`
	Port      int    `mapstructure:"PORT" json:"port" yaml:"port"`
	TagPrefix string `mapstructure:"TAG_PREFIX" json:"tagPrefix" yaml:"tagPrefix"`
	Timeout   int64  `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout"`
}
