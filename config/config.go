package config

// Configuration 對應環境變數 SECTION__KEY，例如 MONGODB__URI、SECURITY__JWT_SECRET
type Configuration struct {
	App      App      `mapstructure:"APP" json:"app" yaml:"app"`
	Log      Log      `mapstructure:"LOG" json:"log" yaml:"log"`
	Security Security `mapstructure:"SECURITY" json:"security" yaml:"security"`

	// 儲存
	MongoDB MongoDB `mapstructure:"MONGODB" json:"mongodb" yaml:"mongodb"`
	Redis   Redis   `mapstructure:"REDIS" json:"redis" yaml:"redis"`

	// 觀測
	Fluentd   Fluentd         `mapstructure:"FLUENTD" json:"fluentd" yaml:"fluentd"`
	Telemetry TelemetryConfig `mapstructure:"TELEMETRY" json:"telemetry" yaml:"telemetry"`
}
