package notify

import (
	"github.com/inkvoice/inkvoice/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("providers.notify",
	fx.Provide(NewFeedFromConfig),
	fx.Provide(NewFromParts),
)

func NewFeedFromConfig(cfg config.Config) *FeedProvider {
	return NewFeed(cfg.NotifyFeedSize)
}

func NewFromParts(log *zap.Logger, feed *FeedProvider) Provider {
	return NewComposite(NewLog(log), feed)
}
