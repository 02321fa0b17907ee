package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type CLI struct {
	EnvFile   kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Load environment variables from this file.'"`
	LogLevel  string                   `default:"info" enum:"debug,info,warn,error" env:"AGRIMIND_LOG_LEVEL" help:"Log level (${enum})."`
	LogFormat string                   `default:"console" enum:"console,json" env:"AGRIMIND_LOG_FORMAT" help:"Log encoding (${enum})."`

	Serve       ServeCmd       `cmd:"" default:"1" help:"Run the dashboard server."`
	Render      RenderCmd      `cmd:"" help:"Write a dashboard page snapshot for a selection."`
	Sensors     SensorsCmd     `cmd:"" help:"List the soil sensor network."`
	Healthcheck HealthcheckCmd `cmd:"" help:"Wait for a running server to report healthy."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("agrimind"),
		kong.Description("AI farm monitoring dashboard."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel, cli.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx.FatalIfErrorf(ctx.Run(logger))
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}
