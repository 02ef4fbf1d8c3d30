package domain

// Markup selects the keyboard attached to a reply
type Markup int

const (
	MarkupNone Markup = iota
	MarkupLanguage
)

// Reply is a message the bot sends back to the user
type Reply struct {
	Text      string
	PhotoPath string // sent as a photo with Text as caption when set
	Markdown  bool
	NoPreview bool
	Markup    Markup
}

// Outcome is the result of handling one inbound update
type Outcome struct {
	Replies []Reply
	Stage   Stage
	// Err classifies a rejected or partially accepted input; nil means accepted
	Err error
}

// Say appends a plain text reply
func (o *Outcome) Say(text string) {
	o.Add(Reply{Text: text})
}

// Add appends r
func (o *Outcome) Add(r Reply) {
	o.Replies = append(o.Replies, r)
}
