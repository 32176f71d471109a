package handlers

import (
	"fmt"
	"strings"

	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/charmbracelet/log"
	"github.com/krau/tgxfer/common/utils/cache"
	"github.com/krau/tgxfer/common/utils/strutil"
)

func handleIntervalCmd(ctx *ext.Context, update *ext.Update) error {
	userID := update.EffectiveUser().GetID()
	args := strings.Fields(update.EffectiveMessage.Text)
	if len(args) < 2 {
		ctx.Reply(update, ext.ReplyTextString(fmt.Sprintf(
			"Progress is updated every %s.\nUsage: /interval <n><unit>, units: s, min, hour, day",
			strutil.FormatDuration(userInterval(userID)))), nil)
		return dispatcher.EndGroups
	}
	d := strutil.ParseDuration(args[1])
	if d <= 0 {
		ctx.Reply(update, ext.ReplyTextString("Invalid interval: "+args[1]), nil)
		return dispatcher.EndGroups
	}
	if err := cache.Set(intervalKey(userID), d); err != nil {
		log.FromContext(ctx).Errorf("Failed to save interval: %s", err)
		ctx.Reply(update, ext.ReplyTextString("Failed to save interval"), nil)
		return dispatcher.EndGroups
	}
	ctx.Reply(update, ext.ReplyTextString("Progress will be updated every "+strutil.FormatDuration(d)), nil)
	return dispatcher.EndGroups
}
