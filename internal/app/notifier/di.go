package notifier

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-telegram/bot"

	tgclient "github.com/you-humble/techrepair/internal/client/http/telegram"
	"github.com/you-humble/techrepair/internal/config"
	"github.com/you-humble/techrepair/internal/converter"
	repconsumer "github.com/you-humble/techrepair/internal/service/consumer/repair"
	tgservice "github.com/you-humble/techrepair/internal/service/telegram"
	"github.com/you-humble/techrepair/platform/closer"
	"github.com/you-humble/techrepair/platform/kafka"
	"github.com/you-humble/techrepair/platform/kafka/consumer"
	"github.com/you-humble/techrepair/platform/kafka/middleware"
	"github.com/you-humble/techrepair/platform/logger"
)

type TelegramService interface {
	repconsumer.RepairEventNotifier
	AddChatID(ctx context.Context, chatID int64)
}

type RepairConsumer interface {
	RunRepairEventsConsume(ctx context.Context) error
}

type di struct {
	converter repconsumer.RepairEventConverter

	repairConsumerGroup sarama.ConsumerGroup
	repairKafkaConsumer kafka.Consumer
	repairConsumer      RepairConsumer

	tgBot     *bot.Bot
	tgClient  tgservice.MessageSender
	tgService TelegramService
}

func NewDI() *di { return &di{} }

func (d *di) KafkaConverter(_ context.Context) repconsumer.RepairEventConverter {
	if d.converter == nil {
		d.converter = converter.NewKafkaConverter()
	}

	return d.converter
}

func (d *di) RepairConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.repairConsumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.RepairEventsConsumerGroupID(),
			cfg.Kafka.RepairEventsConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create repair events consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka repair events consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.repairConsumerGroup = consumerGroup
	}

	return d.repairConsumerGroup
}

func (d *di) RepairKafkaConsumer(ctx context.Context) kafka.Consumer {
	if d.repairKafkaConsumer == nil {
		d.repairKafkaConsumer = consumer.NewConsumer(
			d.RepairConsumerGroup(ctx),
			config.C().Kafka.RepairEventsConsumerGroupID(),
			[]string{
				config.C().Kafka.RepairEventsTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.repairKafkaConsumer
}

func (d *di) RepairConsumer(ctx context.Context) RepairConsumer {
	if d.repairConsumer == nil {
		d.repairConsumer = repconsumer.NewRepairConsumer(
			d.RepairKafkaConsumer(ctx),
			d.KafkaConverter(ctx),
			d.TelegramService(ctx),
		)
	}

	return d.repairConsumer
}

func (d *di) TelegramBot(_ context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}
		closer.AddNamed("Telegram bot", func(ctx context.Context) error {
			_, err := b.Close(ctx)
			return err
		})

		d.tgBot = b
	}

	return d.tgBot
}

func (d *di) TelegramClient(ctx context.Context) tgservice.MessageSender {
	if d.tgClient == nil {
		d.tgClient = tgclient.NewClient(d.TelegramBot(ctx))
	}

	return d.tgClient
}

func (d *di) TelegramService(ctx context.Context) TelegramService {
	if d.tgService == nil {
		d.tgService = tgservice.NewTgService(
			d.TelegramClient(ctx),
			config.C().Telegram.ChatIDs()...,
		)
	}

	return d.tgService
}
