package line

import (
	"berries/internal/pkg/config"
	"berries/internal/pkg/logger"
	"errors"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client.
type Client struct {
	*linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Messaging API client from the configured credentials.
func NewClient(cfg config.LineConfig, log logger.Logger, opts ...linebot.ClientOption) (*Client, error) {
	if cfg.ChannelSecret == "" || cfg.ChannelAccessToken == "" {
		return nil, errors.New("line channel secret and access token must be set")
	}

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		log:    log,
	}, nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(to string, messages ...linebot.SendingMessage) error {
	if _, err := c.PushMessage(to, messages...).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}
