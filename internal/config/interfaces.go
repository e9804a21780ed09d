package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	StaticDir() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	DataDir() string
	RepairsPath() string
	CustomersPath() string
	InventoryPath() string
	AppointmentsPath() string
	SettingsPath() string
	BootstrapDemo() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	RepairEventsTopic() string
	RepairEventsProducerConfig() *sarama.Config
	RepairEventsConsumerGroupID() string
	RepairEventsConsumerConfig() *sarama.Config
}

type Telegram interface {
	BotToken() string
	ChatIDs() []int64
}
