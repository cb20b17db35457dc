package main

import (
	"fmt"
	"os"

	"msgstream/internal/shared/config"
	"msgstream/internal/shared/logger"
	"msgstream/internal/stream"
)

func main() {
	// 1. 加载可选的 .ini 日志配置
	cfg, err := config.Load(config.DefaultIniPath)
	if err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", config.DefaultIniPath, err)
		os.Exit(1)
	}

	// 1.1 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 2. 创建并运行服务器，绑定失败直接退出
	srv := stream.New(stream.ListenAddr)
	defer srv.Close()

	if _, err := srv.InitializeListener(); err != nil {
		logger.Fatal().Err(err).Str("listen_addr", stream.ListenAddr).Msg("Cannot start stream server")
	}
	if err := srv.Serve(); err != nil {
		logger.Error().Err(err).Msg("Stream server stopped")
		os.Exit(1)
	}
}
