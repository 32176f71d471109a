package tgmsg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/styling"
	"github.com/krau/tgxfer/core/transfer"
)

var _ transfer.Publisher = (*Publisher)(nil)

// Publisher sends uploaded files as documents to a chat.
type Publisher struct {
	ectx   *ext.Context
	chatID int64
}

func NewPublisher(ectx *ext.Context, chatID int64) *Publisher {
	return &Publisher{
		ectx:   ectx,
		chatID: chatID,
	}
}

func (p *Publisher) SendDocument(ctx context.Context, doc transfer.Document) error {
	peer := p.ectx.PeerStorage.GetInputPeerById(p.chatID)
	if peer == nil {
		return fmt.Errorf("failed to get input peer for chat ID %d", p.chatID)
	}
	_, err := p.ectx.Sender.To(peer).Media(ctx, DocumentMedia(doc))
	return err
}

// DocumentMedia builds the media of doc, marking videos as streamable and
// audio files with a title.
func DocumentMedia(doc transfer.Document) message.MediaOption {
	docb := message.UploadedDocument(doc.File, styling.Plain(doc.Caption)).
		Filename(doc.Name).
		ForceFile(false)
	if doc.MIME != "" {
		docb = docb.MIME(doc.MIME)
	}
	switch {
	case doc.Video != nil:
		return docb.Video().
			Duration(time.Duration(doc.Video.Duration)*time.Second).
			Resolution(doc.Video.Width, doc.Video.Height).
			SupportsStreaming()
	case strings.HasPrefix(doc.MIME, "video/"):
		return docb.Video().SupportsStreaming()
	case strings.HasPrefix(doc.MIME, "audio/"):
		return docb.Audio().Title(doc.Name)
	}
	return docb
}
