package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars Emoji = "📖" // reading configuration
	EmojiConfig  Emoji = "🔧" // showing configuration
	EmojiMute    Emoji = "🔇" // quiet mode
	EmojiSecret  Emoji = "🔑" // credentials
	EmojiParse   Emoji = "📜" // reading delegation or registrant input

	EmojiRegistry Emoji = "🏛" // talking to the registry
	EmojiTicket   Emoji = "🎫" // pending tickets
	EmojiCompare  Emoji = "🔍" // comparing current and desired states
	EmojiOld      Emoji = "📤" // current state that will be replaced
	EmojiNew      Emoji = "📥" // desired state that will be submitted
	EmojiSubmit   Emoji = "📡" // submitting a modification

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📨" // notifications

	EmojiSignal      Emoji = "🚨" // catching signals
	EmojiAlreadyDone Emoji = "🤷" // registry was already up to date
	EmojiNow         Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm       Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiNotReally   Emoji = "🙈" // dry run
	EmojiBye         Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "
