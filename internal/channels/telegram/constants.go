package telegram

const (
	// defaultMaxMessageLen is the safe limit for Telegram messages.
	// Telegram's hard limit is 4096; 4000 leaves headroom.
	defaultMaxMessageLen = 4000

	// maxButtonLabelLen is the longest inline button label we send.
	// Telegram truncates around 64 characters anyway.
	maxButtonLabelLen = 64
)
