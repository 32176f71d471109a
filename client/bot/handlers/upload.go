package handlers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/client/tgmsg"
	"github.com/krau/tgxfer/common/utils/strutil"
	"github.com/krau/tgxfer/core/notify"
	"github.com/krau/tgxfer/core/transfer"
)

func handleUploadCmd(ctx *ext.Context, update *ext.Update) error {
	args := strutil.ParseArgsRespectQuotes(update.EffectiveMessage.Text)
	if len(args) < 2 {
		ctx.Reply(update, ext.ReplyTextString("Usage: /upload <path>"), nil)
		return dispatcher.EndGroups
	}
	path := args[1]
	msg, err := ctx.Reply(update, ext.ReplyTextString("Uploading..."), nil)
	if err != nil {
		log.FromContext(ctx).Errorf("Failed to reply: %s", err)
		return dispatcher.EndGroups
	}

	chatID := update.EffectiveChat().GetID()
	userID := update.EffectiveUser().GetID()
	status := tgmsg.NewMessage(ctx, chatID, msg.ID)
	reporter := notify.NewReporter(status,
		notify.WithFallback(tgmsg.NewChat(ctx, chatID)),
		notify.WithInterval(userInterval(userID)),
	)
	runTransfer(ctx, fmt.Sprintf("upload[%s]", filepath.Base(path)), func(tctx context.Context) error {
		_, err := transfer.UploadAndSend(tctx, newClient(ctx), tgmsg.NewPublisher(ctx, chatID), path, filepath.Base(path),
			transfer.WithReporter(reporter),
			transfer.WithName(filepath.Base(path)),
		)
		if errors.Is(err, transfer.ErrFileNotFound) {
			return reporter.Notify(tctx, "❌ File not found!")
		}
		if err != nil {
			reporter.Notify(tctx, "❌ Upload failed: "+err.Error())
			return err
		}
		err = status.Delete(tctx)
		if current := reporter.Status(); current != nil && current != notify.Status(status) {
			err = errors.Join(err, current.Delete(tctx))
		}
		return err
	})
	return dispatcher.EndGroups
}
