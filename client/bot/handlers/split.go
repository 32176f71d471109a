package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/krau/tgxfer/client/tgmsg"
	"github.com/krau/tgxfer/common/utils/strutil"
	"github.com/krau/tgxfer/config"
	"github.com/krau/tgxfer/core/split"
)

func handleSplitCmd(ctx *ext.Context, update *ext.Update) error {
	args := strutil.ParseArgsRespectQuotes(update.EffectiveMessage.Text)
	if len(args) < 2 {
		ctx.Reply(update, ext.ReplyTextString("Usage: /split <path> [caption]"), nil)
		return dispatcher.EndGroups
	}
	path := args[1]
	caption := strings.Join(args[2:], " ")
	if caption == "" {
		caption = filepath.Base(path)
	}

	chatID := update.EffectiveChat().GetID()
	uploader := &split.Uploader{
		Client:    newClient(ctx),
		Chat:      tgmsg.NewChat(ctx, chatID),
		Publisher: tgmsg.NewPublisher(ctx, chatID),
		PartSize:  config.C().Transfer.PartSize,
		Interval:  userInterval(update.EffectiveUser().GetID()),
	}
	runTransfer(ctx, fmt.Sprintf("split[%s]", filepath.Base(path)), func(tctx context.Context) error {
		return uploader.Upload(tctx, path, caption)
	})
	return dispatcher.EndGroups
}
