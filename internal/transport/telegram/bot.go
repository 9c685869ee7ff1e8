package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/auth"
	"trivia-quiz-service/internal/domain"
)

// Bot drives quiz sessions over Telegram inline keyboards. The countdown is
// not surfaced here; questions wait until the player answers or skips.
type Bot struct {
	api     *tgbotapi.BotAPI
	service *app.QuizService

	mu       sync.Mutex
	sessions map[int64]string // chat id -> session id
}

func NewBot(token string, service *app.QuizService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Bot{
		api:      api,
		service:  service,
		sessions: make(map[int64]string),
	}, nil
}

// Run consumes the update channel until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	log.Printf("telegram bot authorised as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		chatID := update.Message.Chat.ID
		ctx = b.identityCtx(ctx, update.Message.From)
		switch update.Message.Command() {
		case "start":
			b.sendMenu(chatID)
		case "quiz":
			b.sendCategories(ctx, chatID)
		case "leaderboard":
			b.sendLeaderboard(ctx, chatID)
		default:
			b.sendText(chatID, "Unknown command. Try /quiz or /leaderboard.")
		}
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data
	ctx = b.identityCtx(ctx, callback.From)

	ack := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(ack); err != nil {
		log.Printf("telegram callback ack failed: %v", err)
	}

	switch {
	case data == "menu":
		b.sendMenu(chatID)
	case data == "quiz":
		b.sendCategories(ctx, chatID)
	case data == "leaderboard":
		b.sendLeaderboard(ctx, chatID)
	case data == "skip":
		snap, err := b.sessionCall(ctx, chatID, b.service.Skip)
		b.renderStep(ctx, chatID, snap, err)
	case data == "retry":
		snap, err := b.sessionCall(ctx, chatID, b.service.Advance)
		b.renderStep(ctx, chatID, snap, err)
	case data == "quit":
		b.abandon(ctx, chatID)
	case strings.HasPrefix(data, "cat_"):
		b.startQuiz(ctx, chatID, []string{strings.TrimPrefix(data, "cat_")})
	case strings.HasPrefix(data, "opt_"):
		b.answer(ctx, chatID, strings.TrimPrefix(data, "opt_"))
	default:
		b.sendText(chatID, "Unknown action.")
	}
}

// identityCtx threads the Telegram account through as the scoring identity so
// results land on the board under a stable per-account id.
func (b *Bot) identityCtx(ctx context.Context, from *tgbotapi.User) context.Context {
	if from == nil {
		return ctx
	}
	return auth.WithUser(ctx, domain.User{
		ID:        fmt.Sprintf("tg:%d", from.ID),
		FirstName: from.FirstName,
		LastName:  from.LastName,
	})
}

func (b *Bot) sessionID(chatID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.sessions[chatID]
	return id, ok
}

func (b *Bot) sessionCall(ctx context.Context, chatID int64, call func(context.Context, string) (app.Snapshot, error)) (app.Snapshot, error) {
	id, ok := b.sessionID(chatID)
	if !ok {
		return app.Snapshot{}, domain.ErrSessionNotFound
	}
	return call(ctx, id)
}

func (b *Bot) sendMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Trivia quiz: pick a category, answer at your own pace.")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Play", "quiz"),
			tgbotapi.NewInlineKeyboardButtonData("Leaderboard", "leaderboard"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram send menu failed: %v", err)
	}
}

func (b *Bot) sendCategories(ctx context.Context, chatID int64) {
	categories, err := b.service.Categories(ctx)
	if err != nil {
		log.Printf("telegram categories read failed: %v", err)
		b.sendText(chatID, "Categories are unavailable right now.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, cat := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(cat.Topic, "cat_"+cat.Topic),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back", "menu"),
	))

	msg := tgbotapi.NewMessage(chatID, "Pick a category:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram send categories failed: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("telegram send failed: %v", err)
	}
}

func (b *Bot) startQuiz(ctx context.Context, chatID int64, categories []string) {
	// Drop any previous run for this chat.
	b.abandonSilent(ctx, chatID)

	snap, err := b.service.Start(ctx, categories)
	if err != nil {
		b.sendText(chatID, "Could not start a quiz: "+err.Error())
		return
	}

	b.mu.Lock()
	b.sessions[chatID] = snap.SessionID
	b.mu.Unlock()

	b.sendQuestion(chatID, snap)
}

func (b *Bot) sendQuestion(chatID int64, snap app.Snapshot) {
	if snap.Question == nil {
		return
	}
	text := fmt.Sprintf("Question %d/%d\n\n%s", snap.Index+1, snap.Total, snap.Question.Text)
	msg := tgbotapi.NewMessage(chatID, text)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range snap.Question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("opt_%d", i)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Skip", "skip"),
		tgbotapi.NewInlineKeyboardButtonData("Quit", "quit"),
	))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram send question failed: %v", err)
	}
}

func (b *Bot) answer(ctx context.Context, chatID int64, rawIndex string) {
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return
	}
	id, ok := b.sessionID(chatID)
	if !ok {
		b.sendText(chatID, "No quiz in progress. Use /quiz to start one.")
		return
	}
	if _, err := b.service.SelectOption(ctx, id, index); err != nil {
		b.sendText(chatID, "That answer did not go through: "+err.Error())
		return
	}
	snap, err := b.service.Advance(ctx, id)
	b.renderStep(ctx, chatID, snap, err)
}

func (b *Bot) renderStep(ctx context.Context, chatID int64, snap app.Snapshot, err error) {
	if err != nil {
		if snap.State == app.StateFailedSubmit {
			msg := tgbotapi.NewMessage(chatID, "Saving your score failed. Retry?")
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("Retry", "retry"),
					tgbotapi.NewInlineKeyboardButtonData("Quit", "quit"),
				),
			)
			if _, sendErr := b.api.Send(msg); sendErr != nil {
				log.Printf("telegram send retry prompt failed: %v", sendErr)
			}
			return
		}
		b.sendText(chatID, "Something went wrong: "+err.Error())
		return
	}

	if snap.State == app.StateComplete {
		b.mu.Lock()
		delete(b.sessions, chatID)
		b.mu.Unlock()

		msg := tgbotapi.NewMessage(chatID,
			fmt.Sprintf("Quiz complete. Score: %d/%d", snap.Score, snap.Total))
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Play again", "quiz"),
				tgbotapi.NewInlineKeyboardButtonData("Leaderboard", "leaderboard"),
			),
		)
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("telegram send final message failed: %v", err)
		}
		return
	}

	b.sendQuestion(chatID, snap)
}

func (b *Bot) abandon(ctx context.Context, chatID int64) {
	b.abandonSilent(ctx, chatID)
	b.sendText(chatID, "Quiz abandoned. Nothing was saved.")
}

func (b *Bot) abandonSilent(ctx context.Context, chatID int64) {
	b.mu.Lock()
	id, ok := b.sessions[chatID]
	delete(b.sessions, chatID)
	b.mu.Unlock()
	if ok {
		b.service.Abandon(ctx, id)
	}
}

func (b *Bot) sendLeaderboard(ctx context.Context, chatID int64) {
	entries, err := b.service.Leaderboard(ctx)
	if err != nil {
		log.Printf("telegram leaderboard read failed: %v", err)
		b.sendText(chatID, "The leaderboard is unavailable right now.")
		return
	}
	if len(entries) == 0 {
		b.sendText(chatID, "No results yet. Be the first!")
		return
	}

	var sb strings.Builder
	sb.WriteString("Top players\n\n")
	for i, entry := range entries {
		if i >= 10 {
			break
		}
		name := strings.TrimSpace(entry.FirstName + " " + entry.LastName)
		sb.WriteString(fmt.Sprintf("%d. %s - %d (%s)\n", i+1, name, entry.TotalScore, entry.Attempts))
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Play", "quiz"),
			tgbotapi.NewInlineKeyboardButtonData("Menu", "menu"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram send leaderboard failed: %v", err)
	}
}
