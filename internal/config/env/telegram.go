package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type telegramEnv struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN,required"`
	ChatID   int64  `env:"TELEGRAM_CHAT_ID,required"`

	SendTimeout time.Duration `env:"TELEGRAM_SEND_TIMEOUT" envDefault:"10s"`
}

type telegram struct {
	raw telegramEnv
}

func NewTelegramConfig() (*telegram, error) {
	var raw telegramEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &telegram{raw: raw}, nil
}

func (cfg *telegram) BotToken() string { return cfg.raw.BotToken }
func (cfg *telegram) ChatID() int64    { return cfg.raw.ChatID }

func (cfg *telegram) SendTimeout() time.Duration {
	return cfg.raw.SendTimeout
}
