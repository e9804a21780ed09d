package notifier

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/techrepair/internal/config"
	"github.com/you-humble/techrepair/platform/closer"
	"github.com/you-humble/techrepair/platform/logger"
)

const startMsg = `👋 <b>Бот уведомлений TechRepair</b>

Сюда приходят события по заявкам на ремонт:
🛠 новая заявка
🔄 смена статуса
🗑 удаление заявки

Чат подписан, дальше ничего делать не нужно.`

var (
	errKafkaDisabled = errors.New("kafka is disabled: set KAFKA_ENABLED and KAFKA_BROKERS")
	errNoBotToken    = errors.New("TELEGRAM_BOT_TOKEN is not set")
)

type app struct {
	di *di
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.checkConfig,
		a.initCloser,
		a.initDI,
		a.initTelegramBot,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

// checkConfig runs after the logger so the reason reaches the output.
func (a *app) checkConfig(_ context.Context) error {
	if !config.C().Kafka.Enabled() {
		return errKafkaDisabled
	}
	if config.C().Telegram.BotToken() == "" {
		return errNoBotToken
	}
	return nil
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// initTelegramBot subscribes every chat that sends /start.
func (a *app) initTelegramBot(ctx context.Context) error {
	telegramBot := a.di.TelegramBot(ctx)
	tgSvc := a.di.TelegramService(ctx)

	telegramBot.RegisterHandler(
		bot.HandlerTypeMessageText,
		"/start",
		bot.MatchTypeExact,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var username string
			if update.Message.From != nil {
				username = update.Message.From.Username
			}
			logger.Info(ctx, "new subscriber",
				logger.String("username", username),
				logger.Int64("chat_id", update.Message.Chat.ID),
			)

			_, err := b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    update.Message.Chat.ID,
				Text:      startMsg,
				ParseMode: models.ParseModeHTML,
			})
			if err != nil {
				logger.Error(ctx, "failed to send welcome message", logger.ErrorF(err))
			}

			tgSvc.AddChatID(ctx, update.Message.Chat.ID)
		})

	go func() {
		logger.Info(ctx, "🤖 Telegram bot started")
		telegramBot.Start(ctx)
	}()

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx, "🚀 repair events consumer running",
			logger.String("topic", config.C().Kafka.RepairEventsTopic()),
		)
		return a.di.RepairConsumer(egCtx).RunRepairEventsConsume(egCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during notifier shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Notifier stopped")
		return
	}
	logger.Info(ctx, "✅ Notifier stopped")
}
