package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/celestix/gotgproto"
	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/celestix/gotgproto/sessionMaker"
	"github.com/charmbracelet/log"
	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/client/bot/handlers"
	"github.com/krau/tgxfer/client/middleware"
	"github.com/krau/tgxfer/common/utils/tgutil"
	"github.com/krau/tgxfer/config"
	"github.com/krau/tgxfer/database"
)

var ectx *ext.Context

func ExtContext() *ext.Context {
	return ectx
}

type initResult struct {
	client *gotgproto.Client
	err    error
}

// Init logs the bot in, registers its commands and handlers and returns a
// context usable outside of update handlers.
func Init(ctx context.Context) (*ext.Context, error) {
	log.FromContext(ctx).Info("Initializing Bot...")
	resultChan := make(chan initResult, 1)

	go func() {
		client, err := newClient(ctx)
		resultChan <- initResult{client, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("bot initialization cancelled: %w", ctx.Err())
	case result := <-resultChan:
		if result.err != nil {
			return nil, fmt.Errorf("failed to initialize bot: %w", result.err)
		}
		handlers.Register(result.client.Dispatcher)
		ectx = result.client.CreateContext()
		log.FromContext(ctx).Info("Bot initialization completed.")
		return ectx, nil
	}
}

func newClient(ctx context.Context) (*gotgproto.Client, error) {
	resolver, err := tgutil.NewConfigProxyResolver()
	if err != nil {
		return nil, err
	}
	dialect, err := database.SessionDialect(config.C().Telegram.Session)
	if err != nil {
		return nil, err
	}
	client, err := gotgproto.NewClient(
		config.C().Telegram.AppID,
		config.C().Telegram.AppHash,
		gotgproto.ClientTypeBot(config.C().Telegram.Token),
		&gotgproto.ClientOpts{
			Session:          sessionMaker.SqlSession(dialect),
			DisableCopyright: true,
			Middlewares:      middleware.NewDefaultMiddlewares(ctx, 5*time.Minute),
			Resolver:         resolver,
			Context:          ctx,
			MaxRetries:       config.C().Telegram.RpcRetry,
			AutoFetchReply:   true,
			ErrorHandler: func(ctx *ext.Context, u *ext.Update, s string) error {
				log.FromContext(ctx).Errorf("unhandled error: %s", s)
				return dispatcher.EndGroups
			},
		},
	)
	if err != nil {
		return nil, err
	}
	commands := make([]tg.BotCommand, 0, len(handlers.CommandHandlers))
	for _, info := range handlers.CommandHandlers {
		commands = append(commands, tg.BotCommand{Command: info.Cmd, Description: info.Desc})
	}
	_, err = client.API().BotsSetBotCommands(ctx, &tg.BotsSetBotCommandsRequest{
		Scope:    &tg.BotCommandScopeDefault{},
		Commands: commands,
	})
	return client, err
}
