package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"appinfo/internal/codec"
	"appinfo/internal/config"
	"appinfo/internal/core/appinfo"
	"appinfo/internal/domain"
	"appinfo/internal/logger"
	"appinfo/internal/telemetry"
)

// propertyFlags collects repeated -D key=value flags
type propertyFlags config.MapProperties

func (p propertyFlags) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (p propertyFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	p[key] = value
	return nil
}

func main() {
	// Command line flags
	appID := flag.String("app", "", "App ID; autodetected from properties when empty")
	propsPath := flag.String("config", "", "YAML properties file (default: search standard locations)")
	format := flag.String("format", "json", "Output format: json or yaml")
	logLevel := flag.String("log-level", "warn", "Log level")
	dev := flag.Bool("dev", false, "Human-readable logs")
	defines := propertyFlags{}
	flag.Var(defines, "D", "Property as key=value (repeatable), e.g. -D @appId=foo-svc")
	flag.Parse()

	log, err := logger.New(*logLevel, *dev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	enc, err := codec.ForFormat(*format)
	if err != nil {
		log.Fatal("Invalid output format", zap.Error(err))
	}

	props, path, err := loadProperties(*propsPath)
	if err != nil {
		log.Fatal("Failed to load properties", zap.String("path", path), zap.Error(err))
	}
	if path != "" {
		log.Debug("Properties loaded", zap.String("path", path))
	}
	props = config.Chain(config.MapProperties(defines), props)

	builder := appinfo.NewBuilder(appinfo.WithLogger(log))

	var info domain.AppInfo
	if *appID != "" {
		info = builder.LocalInstance(*appID)
	} else {
		info, err = builder.DetectLocalInstance(props)
		if err != nil {
			log.Fatal("Cannot determine app ID; pass -app or -D @appId=<name>", zap.Error(err))
		}
	}

	if env, ok := appinfo.DetectEnvironment(props); ok && env != info.Environment() {
		log.Info("Configured environment ignored for local instance",
			zap.String("configured", env),
			zap.String("using", info.Environment()),
		)
	}
	log.Debug("Resolved identity", telemetry.Fields(info)...)

	if err := enc.Export(info, os.Stdout); err != nil {
		log.Fatal("Failed to write identity", zap.Error(err))
	}
}

func loadProperties(path string) (config.Properties, string, error) {
	if path == "" {
		return config.Load()
	}
	file, err := config.LoadFromPath(path)
	if err != nil {
		return nil, path, err
	}
	return config.Chain(config.EnvProperties{}, file), path, nil
}
