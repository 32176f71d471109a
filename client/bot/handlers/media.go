package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/charmbracelet/log"
	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/client/tgmsg"
	"github.com/krau/tgxfer/common/utils/strutil"
	"github.com/krau/tgxfer/config"
	"github.com/krau/tgxfer/core/notify"
	"github.com/krau/tgxfer/core/transfer"
	"github.com/krau/tgxfer/pkg/tfile"
)

func handleMediaMessage(ctx *ext.Context, update *ext.Update) error {
	logger := log.FromContext(ctx)
	message := update.EffectiveMessage.Message
	logger.Debugf("Got media: %s", message.Media.TypeName())
	switch message.Media.(type) {
	case *tg.MessageMediaDocument, *tg.MessageMediaPhoto:
	default:
		return dispatcher.EndGroups
	}

	var opts []tfile.TGFileOptions
	if name := captionFileName(message.GetMessage()); name != "" {
		opts = append(opts, tfile.WithNameIfEmpty(name))
	}
	file, err := tfile.FromMedia(message.Media, opts...)
	if err != nil {
		logger.Errorf("Failed to get file: %s", err)
		ctx.Reply(update, ext.ReplyTextString("Failed to get file: "+err.Error()), nil)
		return dispatcher.EndGroups
	}
	msg, err := ctx.Reply(update, ext.ReplyTextString("Downloading..."), nil)
	if err != nil {
		logger.Errorf("Failed to reply: %s", err)
		return dispatcher.EndGroups
	}

	chatID := update.EffectiveChat().GetID()
	userID := update.EffectiveUser().GetID()
	reporter := notify.NewReporter(tgmsg.NewMessage(ctx, chatID, msg.ID),
		notify.WithFallback(tgmsg.NewChat(ctx, chatID).ReplyTo(message.ID)),
		notify.WithInterval(userInterval(userID)),
	)
	runTransfer(ctx, fmt.Sprintf("download[%d]", message.ID), func(tctx context.Context) error {
		res, err := transfer.Download(tctx, newClient(ctx), file,
			transfer.WithReporter(reporter),
			transfer.WithDir(config.C().Transfer.DownloadDir),
			transfer.WithUserID(userID),
		)
		if err != nil {
			reporter.Notify(tctx, "❌ Download failed: "+err.Error())
			return err
		}
		return reporter.Notify(tctx, downloadResultText(res))
	})
	return dispatcher.EndGroups
}

func downloadResultText(res *transfer.DownloadResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Saved to %s\nSize: %s", res.Path, strutil.HumanReadableSize(res.Size))
	if res.MIME != "" {
		fmt.Fprintf(&sb, "\nType: %s", res.MIME)
	}
	if res.Video != nil {
		fmt.Fprintf(&sb, "\nVideo: %dx%d, %s", res.Video.Width, res.Video.Height, strutil.FormatClock(int64(res.Video.Duration)))
	}
	return sb.String()
}

// captionFileName turns the first line of a caption into a file name stem.
func captionFileName(caption string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(caption), "\n")
	runes := []rune(strings.Join(strings.Fields(line), "_"))
	return string(runes[:min(64, len(runes))])
}
