package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadHeaderTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	BaseURL() string
	Token() string
	Collection() string
	RequestTimeout() time.Duration
	SimilarLimit() int
}

type Telegram interface {
	BotToken() string
	ChatID() int64
	SendTimeout() time.Duration
}
