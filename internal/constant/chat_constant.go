package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

const (
	// Titles assigned when the caller does not provide one.
	ChatTitleFallbackNew     = "New Chat"
	ChatTitleFallbackUpdated = "Updated Chat"

	// Maximum number of characters of the first user message used as a title.
	ChatTitleMaxLen = 50

	// Maximum sessions returned by a listing to prevent excessive payloads.
	ChatListLimit = 50
)

// AssistantFallbackMessage replaces an empty completion from the provider.
const AssistantFallbackMessage = "I'm here to help! Could you please rephrase your question?"

// AssistantUnavailableMessage is the user-safe error surfaced when the
// upstream provider fails. Provider error detail never leaks to clients.
const AssistantUnavailableMessage = "AI service temporarily unavailable. Please try again later."
