package config

import (
	"fmt"

	"gopkg.in/ini.v1"
	"msgstream/internal/shared/types"
)

// DefaultIniPath is the fixed location of the optional behaviour file.
const DefaultIniPath = "configs/msgstream.ini"

// LoadIni 加载 msgstream.ini 行为配置文件。
// 文件不存在时保留 cfg 中已有的默认值。
func LoadIni(cfg *types.Config, fileName string) error {
	// Loose 模式下不存在的文件被视为空文件。
	iniFile, err := ini.LoadSources(ini.LoadOptions{Loose: true}, fileName)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", fileName, err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return fmt.Errorf("failed to map %s: %w", fileName, err)
	}
	return nil
}

// Load returns the defaults overlaid with fileName, if it exists.
func Load(fileName string) (*types.Config, error) {
	cfg := types.DefaultConfig()
	if err := LoadIni(cfg, fileName); err != nil {
		return nil, err
	}
	return cfg, nil
}
