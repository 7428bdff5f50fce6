package assistant

// Kind tags a reply so the presentation layer can style it without sniffing
// the text for words like "Invalid". The tag is the contract; the wording is
// free to change.
type Kind int

const (
	// KindAnswer is a normal assistant response (topic answers, listings).
	KindAnswer Kind = iota
	// KindSuccess confirms a completed mutation (task added, reminder set).
	KindSuccess
	// KindError reports a recoverable input problem.
	KindError
	// KindPrompt asks the user for the next piece of input in a flow.
	KindPrompt
	// KindWarn flags an out-of-sequence request (quiz already running, no
	// tasks to complete).
	KindWarn
	// KindMuted de-emphasizes notices such as flow cancellations.
	KindMuted
	// KindAccent highlights chrome: the menu, quiz banners, greetings.
	KindAccent
)

// Reply is one line (or block) of assistant output.
type Reply struct {
	Text string
	Kind Kind
}

// Turn is everything produced by handling one line of user input. Exit means
// the user asked to leave; shutting down is the host's job.
type Turn struct {
	Replies []Reply
	Exit    bool
}

func reply(kind Kind, text string) Reply {
	return Reply{Text: text, Kind: kind}
}
