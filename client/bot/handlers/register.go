package handlers

import (
	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/dispatcher/handlers"
	"github.com/celestix/gotgproto/dispatcher/handlers/filters"
	"github.com/celestix/gotgproto/ext"
	"github.com/krau/tgxfer/config"
)

type DescCommandHandler struct {
	Cmd     string
	Desc    string
	handler func(ctx *ext.Context, u *ext.Update) error
}

var CommandHandlers = []DescCommandHandler{
	{"start", "Show usage", handleHelpCmd},
	{"help", "Show usage", handleHelpCmd},
	{"upload", "Upload a local file to this chat", handleUploadCmd},
	{"split", "Upload a local file in parts", handleSplitCmd},
	{"interval", "Set the progress update interval", handleIntervalCmd},
}

func Register(disp dispatcher.Dispatcher) {
	transfers.SetLimit(config.C().Workers)

	disp.AddHandler(handlers.NewMessage(filters.Message.ChatType(filters.ChatTypeChannel), func(ctx *ext.Context, u *ext.Update) error {
		return dispatcher.EndGroups
	}))
	disp.AddHandler(handlers.NewMessage(filters.Message.ChatType(filters.ChatTypeChat), func(ctx *ext.Context, u *ext.Update) error {
		return dispatcher.EndGroups
	}))
	disp.AddHandler(handlers.NewMessage(filters.Message.All, checkPermission))
	for _, info := range CommandHandlers {
		disp.AddHandler(handlers.NewCommand(info.Cmd, info.handler))
	}
	disp.AddHandler(handlers.NewMessage(filters.Message.Media, handleMediaMessage))
}
