// Package tgmsg backs status messages and document publishing with a
// gotgproto context.
package tgmsg

import (
	"context"
	"fmt"

	"github.com/celestix/gotgproto/ext"
	"github.com/gotd/td/tg"
	"github.com/krau/tgxfer/core/notify"
)

var (
	_ notify.Status = (*Message)(nil)
	_ notify.Chat   = (*Chat)(nil)
)

// Message is a sent message that can be edited or deleted.
type Message struct {
	ectx   *ext.Context
	chatID int64
	id     int
}

func NewMessage(ectx *ext.Context, chatID int64, messageID int) *Message {
	return &Message{
		ectx:   ectx,
		chatID: chatID,
		id:     messageID,
	}
}

func (m *Message) ID() int {
	return m.id
}

func (m *Message) Edit(ctx context.Context, text string) error {
	_, err := m.ectx.EditMessage(m.chatID, &tg.MessagesEditMessageRequest{
		ID:      m.id,
		Message: text,
	})
	return err
}

func (m *Message) Delete(ctx context.Context) error {
	return m.ectx.DeleteMessages(m.chatID, []int{m.id})
}

// Chat posts plain text messages, optionally as replies to one message.
type Chat struct {
	ectx    *ext.Context
	chatID  int64
	replyTo int
}

func NewChat(ectx *ext.Context, chatID int64) *Chat {
	return &Chat{
		ectx:   ectx,
		chatID: chatID,
	}
}

// ReplyTo returns a copy of c whose messages reply to messageID.
func (c *Chat) ReplyTo(messageID int) *Chat {
	cc := *c
	cc.replyTo = messageID
	return &cc
}

func (c *Chat) Send(ctx context.Context, text string) (notify.Status, error) {
	msg, err := c.SendMessage(ctx, text)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// SendMessage is Send returning the concrete message.
func (c *Chat) SendMessage(ctx context.Context, text string) (*Message, error) {
	req := &tg.MessagesSendMessageRequest{
		Message: text,
	}
	if c.replyTo != 0 {
		req.SetReplyTo(&tg.InputReplyToMessage{ReplyToMsgID: c.replyTo})
	}
	msg, err := c.ectx.SendMessage(c.chatID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return NewMessage(c.ectx, c.chatID, msg.ID), nil
}
