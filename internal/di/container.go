package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/xile1310/phish-filter/internal/config"
	"github.com/xile1310/phish-filter/internal/core"
	"github.com/xile1310/phish-filter/internal/factory"
	"github.com/xile1310/phish-filter/internal/logging"
	"github.com/xile1310/phish-filter/internal/ports"
	"github.com/xile1310/phish-filter/internal/rules"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}

	// Register the rule engine as the classifier
	if err := container.Provide(func() core.Classifier {
		return rules.NewEngine()
	}); err != nil {
		return nil, err
	}

	// Register the rule configuration
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *core.RuleConfig {
		ruleCfg := cfg.GetRules()
		logger.Info("Loaded rule configuration",
			zap.Strings("legit_domains", ruleCfg.LegitDomains),
			zap.Strings("keywords", ruleCfg.Keywords),
			zap.Float64("classification_threshold", ruleCfg.ClassificationThreshold))
		return ruleCfg
	}); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register cache TTL and enabled flag
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Register filter service
	if err := container.Provide(core.NewFilterService); err != nil {
		return nil, err
	}

	// Register email filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.EmailFilter, error) {
		return f.CreateEmailFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
