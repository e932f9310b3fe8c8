package mt940parser

// state is the position inside a message, named after the last tag seen.
type state int

const (
	stateStart state = iota
	stateRefNo
	stateRelatedMsg
	stateAccountID
	stateStatementNo
	stateOpeningBalance
	stateStatementLine
	stateInformation
	stateClosingBalance
	stateClosingAvailable
	stateForwardAvailable
)

// allowedTags lists, per state, the tags that may follow in the order they are reported.
var allowedTags = map[state][]string{
	stateStart:            {Tag20},
	stateRefNo:            {Tag21, Tag25},
	stateRelatedMsg:       {Tag25},
	stateAccountID:        {Tag28, Tag28C},
	stateStatementNo:      {Tag60M, Tag60F},
	stateOpeningBalance:   {Tag61, Tag62M, Tag62F, Tag86},
	stateStatementLine:    {Tag61, Tag86, Tag62M, Tag62F},
	stateInformation:      {Tag61, Tag62M, Tag62F, Tag86},
	stateClosingBalance:   {Tag64, Tag65, Tag86},
	stateClosingAvailable: {Tag65, Tag86},
	stateForwardAvailable: {Tag65, Tag86},
}

// stateForTag is the state entered after a tag has been consumed.
var stateForTag = map[string]state{
	Tag20:  stateRefNo,
	Tag21:  stateRelatedMsg,
	Tag25:  stateAccountID,
	Tag28:  stateStatementNo,
	Tag28C: stateStatementNo,
	Tag60M: stateOpeningBalance,
	Tag60F: stateOpeningBalance,
	Tag61:  stateStatementLine,
	Tag86:  stateInformation,
	Tag62M: stateClosingBalance,
	Tag62F: stateClosingBalance,
	Tag64:  stateClosingAvailable,
	Tag65:  stateForwardAvailable,
}

// target says where the text of a tag 86 field is accumulated.
type target int

const (
	targetNone target = iota
	targetMessage
	targetStatementLine
)

// transition returns the state after tag and, for tag 86, where its text belongs.
// Text following a statement line or another tag 86 belongs to the last statement line.
// ok is false when tag may not follow the current state.
func transition(from state, tag string) (next state, into target, ok bool) {
	allowed := false
	for _, t := range allowedTags[from] {
		if t == tag {
			allowed = true
			break
		}
	}
	if !allowed {
		return from, targetNone, false
	}

	next = stateForTag[tag]
	if tag != Tag86 {
		return next, targetNone, true
	}
	if from == stateStatementLine || from == stateInformation {
		return next, targetStatementLine, true
	}
	return next, targetMessage, true
}

// expectedTags returns a copy of the tags allowed in s.
func expectedTags(s state) []string {
	out := make([]string, len(allowedTags[s]))
	copy(out, allowedTags[s])
	return out
}
