package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/dictcli/internal/infrastructure/config"
)

// NewLogger builds a configured logrus logger from application config.
// Output goes to stderr so rendered definitions stay the only stdout
// artifact.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}
