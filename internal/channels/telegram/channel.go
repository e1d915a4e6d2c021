// Package telegram wires the navigation controller to the Telegram Bot API:
// long polling, inline keyboards and callback dispatch.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/nextlevelbuilder/mathbot/internal/nav"
)

// Config configures the Telegram channel.
type Config struct {
	Token         string
	MaxMessageLen int
}

// Channel runs the bot over Telegram long polling.
type Channel struct {
	bot  *telego.Bot
	ctrl *nav.Controller
	cfg  Config
}

// New creates the channel. The controller must already be bound to an open
// catalog store.
func New(cfg Config, ctrl *nav.Controller) (*Channel, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}
	if cfg.MaxMessageLen <= 0 {
		cfg.MaxMessageLen = defaultMaxMessageLen
	}

	bot, err := telego.NewBot(cfg.Token, telego.WithDiscardLogger())
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Channel{bot: bot, ctrl: ctrl, cfg: cfg}, nil
}

// Run polls for updates until ctx is cancelled. Every update is handled to
// completion before the next; a failing update never stops the loop.
func (c *Channel) Run(ctx context.Context) error {
	updates, err := c.bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return fmt.Errorf("start long polling: %w", err)
	}

	slog.Info("telegram channel started")
	for update := range updates {
		c.handleUpdate(ctx, update)
	}
	return nil
}

func (c *Channel) handleUpdate(ctx context.Context, update telego.Update) {
	reqID := uuid.NewString()[:8]

	switch {
	case update.CallbackQuery != nil:
		c.handleCallback(ctx, reqID, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		c.handleMessage(ctx, reqID, update.Message)
	}
}

// handleMessage dispatches bot commands; any other text is a search query.
func (c *Channel) handleMessage(ctx context.Context, reqID string, msg *telego.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	slog.Debug("message received", "req", reqID, "chat_id", chatID, "len", len(text))

	if text == "" || text[0] != '/' {
		c.send(ctx, reqID, chatID, c.ctrl.Search(ctx, text))
		return
	}

	// Extract command (strip @botname suffix if present)
	parts := strings.SplitN(text, " ", 2)
	cmd := strings.ToLower(strings.SplitN(parts[0], "@", 2)[0])
	args := ""
	if len(parts) == 2 {
		args = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/start", "/menu":
		c.send(ctx, reqID, chatID, c.ctrl.RootMenu(ctx))
	case "/quote":
		c.send(ctx, reqID, chatID, c.ctrl.RandomQuote(ctx))
	case "/search":
		c.send(ctx, reqID, chatID, c.ctrl.Search(ctx, args))
	case "/help":
		c.send(ctx, reqID, chatID, []nav.Unit{{Text: helpText}})
	default:
		c.send(ctx, reqID, chatID, []nav.Unit{{Text: "Неизвестная команда. Отправьте /help для списка команд."}})
	}
}

// handleCallback answers the query, decodes the action and runs the intent.
// Malformed callback data is reported as a generic failure, never a crash.
func (c *Channel) handleCallback(ctx context.Context, reqID string, q *telego.CallbackQuery) {
	if err := c.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: q.ID,
	}); err != nil {
		slog.Debug("answer callback failed", "req", reqID, "error", err)
	}

	if q.Message == nil {
		slog.Warn("callback without message", "req", reqID)
		return
	}
	chatID := q.Message.GetChat().ID

	action, err := nav.ParseAction(q.Data)
	if err != nil {
		slog.Warn("bad callback data", "req", reqID, "chat_id", chatID, "data", q.Data)
		c.send(ctx, reqID, chatID, []nav.Unit{{Text: "⚠️ Эта кнопка устарела. Отправьте /start."}})
		return
	}

	slog.Debug("callback received", "req", reqID, "chat_id", chatID, "action", action.String())

	var units []nav.Unit
	switch action.Kind {
	case nav.KindRootMenu:
		units = c.ctrl.RootMenu(ctx)
	case nav.KindSection:
		units = c.ctrl.Section(ctx, action.ID)
	case nav.KindMaterial:
		units = c.ctrl.Material(ctx, action.ID)
	case nav.KindRandomQuote:
		units = c.ctrl.RandomQuote(ctx)
	case nav.KindSearch:
		units = c.ctrl.SearchUsage()
	}
	c.send(ctx, reqID, chatID, units)
}

// send delivers units in order. A failed send logs and drops the remainder:
// multi-part delivery is not transactional.
func (c *Channel) send(ctx context.Context, reqID string, chatID int64, units []nav.Unit) {
	for i, unit := range units {
		params := tu.Message(tu.ID(chatID), unit.Text).WithParseMode(telego.ModeHTML)
		if kb := buildKeyboard(unit.Keyboard); kb != nil {
			params = params.WithReplyMarkup(kb)
		}
		if _, err := c.bot.SendMessage(ctx, params); err != nil {
			slog.Warn("send failed", "req", reqID, "chat_id", chatID, "unit", i, "error", err)
			return
		}
	}
}

// buildKeyboard converts controller buttons into an inline keyboard.
func buildKeyboard(rows [][]nav.Button) *telego.InlineKeyboardMarkup {
	if len(rows) == 0 {
		return nil
	}

	kbRows := make([][]telego.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		kbRow := make([]telego.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			kbRow = append(kbRow, tu.InlineKeyboardButton(trimLabel(btn.Label)).
				WithCallbackData(btn.Action.String()))
		}
		kbRows = append(kbRows, kbRow)
	}
	return tu.InlineKeyboard(kbRows...)
}

// trimLabel shortens button labels to Telegram's display limit.
func trimLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= maxButtonLabelLen {
		return label
	}
	return string(runes[:maxButtonLabelLen-1]) + "…"
}

const helpText = "Доступные команды:\n" +
	"/start — главное меню\n" +
	"/search &lt;запрос&gt; — поиск по материалам\n" +
	"/quote — случайная цитата\n" +
	"/help — эта справка\n\n" +
	"Любое другое сообщение — поисковый запрос."
