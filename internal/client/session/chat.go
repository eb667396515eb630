package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
)

// SendMessage appends text as a user message, asks the bot and appends its
// answer (or ErrorReplyText). It returns the bot-side message. Blank text is
// ignored and yields a zero Message.
//
// If the session ends while the bot is answering, the answer is dropped and
// ErrSessionChanged is returned.
func (c *Controller) SendMessage(ctx context.Context, text string) (models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return models.Message{}, nil
	}

	c.mu.Lock()
	if c.user == nil {
		c.mu.Unlock()
		return models.Message{}, ErrNotAuthenticated
	}
	sid := c.sessionID
	c.messages = append(c.messages, models.NewMessage(models.PrefixUser, models.SenderUser, text, c.now()))
	c.pending++
	c.persistLocked(ctx)
	c.mu.Unlock()

	var reply models.Message
	answer, err := c.bot.Reply(ctx, text)
	if err != nil {
		c.log.Error(ctx, "bot reply failed", "error", err)
		reply = models.NewMessage(models.PrefixError, models.SenderBot, ErrorReplyText, c.now())
	} else {
		reply = models.NewMessage(models.PrefixBot, models.SenderBot, answer, c.now())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessionID != sid {
		c.log.Debug(ctx, "dropping reply for an ended session", "id", reply.ID)
		return models.Message{}, ErrSessionChanged
	}

	c.pending--
	c.messages = append(c.messages, reply)
	c.persistLocked(ctx)
	return reply, nil
}
