package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"msgstream/internal/shared/config"
	"msgstream/internal/shared/logger"
	"msgstream/internal/stream"
)

func main() {
	address := flag.String("addr", "127.0.0.1:8080", "Address of the msgstream server")
	flag.Parse()

	cfg, err := config.Load(config.DefaultIniPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", config.DefaultIniPath, err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info().Str("addr", *address).Msg(">>> Connecting to stream server...")

	// 服务器一次只服务一个客户端，排队期间连接也会成功。
	conn, err := net.DialTimeout("tcp", *address, 5*time.Second)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", *address).Msg("Connection failed")
	}
	defer conn.Close()

	start := time.Now()
	n, err := stream.Receive(conn, func(i int, line string) {
		fmt.Println(line)
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Stream broken after %d messages", n)
		os.Exit(1)
	}
	if n != stream.MessageCount {
		logger.Error().Msgf("Server closed after %d of %d messages", n, stream.MessageCount)
		os.Exit(1)
	}
	logger.Info().Msgf("Received all %d messages in %s", n, time.Since(start).Round(time.Millisecond))
}
