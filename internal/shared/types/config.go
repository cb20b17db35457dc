package types

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config 是 msgstream 的配置结构体。
// 监听地址和消息节奏是固定的，不在这里配置。
type Config struct {
	LogConf `ini:"log"`
}

// DefaultConfig returns the configuration used when no ini file is present.
func DefaultConfig() *Config {
	return &Config{
		LogConf: LogConf{Level: "info"},
	}
}
