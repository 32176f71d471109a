package handlers

import (
	"fmt"

	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/ext"
	"github.com/krau/tgxfer/config"
)

const helpTextFmt = `tgxfer %s (%s)

Send me a file or photo and I will save it on the server.

/upload <path> - upload a local file to this chat
/split <path> [caption] - upload a local file in numbered parts
/interval <n><unit> - set how often progress is updated, e.g. 10s or 1min
/help - show this message`

func handleHelpCmd(ctx *ext.Context, update *ext.Update) error {
	shortHash := config.GitCommit
	if len(shortHash) > 7 {
		shortHash = shortHash[:7]
	}
	ctx.Reply(update, ext.ReplyTextString(fmt.Sprintf(helpTextFmt, config.Version, shortHash)), nil)
	return dispatcher.EndGroups
}
