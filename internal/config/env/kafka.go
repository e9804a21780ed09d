package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled           bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	RepairEventsTopic string   `env:"KAFKA_REPAIR_EVENTS_TOPIC" envDefault:"repair.events"`
	ConsumerGroupID   string   `env:"KAFKA_REPAIR_EVENTS_CONSUMER_GROUP_ID" envDefault:"techrepair-notifier"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

// Enabled is false when the flag is off or no broker is configured.
func (cfg *kafka) Enabled() bool             { return cfg.raw.Enabled && len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string         { return cfg.raw.Brokers }
func (cfg *kafka) RepairEventsTopic() string { return cfg.raw.RepairEventsTopic }

func (cfg *kafka) RepairEventsConsumerGroupID() string { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) RepairEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) RepairEventsConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
