package mt940parser

import (
	"fjacquet/mt940/internal/models"
	"fjacquet/mt940/internal/parsererror"
)

// Parse decodes MT940 text into its messages, in document order.
// Decoding stops at the first error and no partial result is returned.
func Parse(text string) ([]models.Message, error) {
	fields, err := ParseFields(text)
	if err != nil {
		return nil, err
	}
	return ParseMessages(fields)
}

// ParseMessages assembles tokenized fields into messages. A new message starts at every
// tag 20 field.
func ParseMessages(fields []models.Field) ([]models.Message, error) {
	if len(fields) > 0 && fields[0].Tag != Tag20 {
		if !IsKnownTag(fields[0].Tag) {
			return nil, parsererror.UnknownTag(fields[0].Tag)
		}
		return nil, parsererror.RequiredTagNotFound(Tag20)
	}

	messages := make([]models.Message, 0, countMessages(fields))
	for _, group := range splitMessages(fields) {
		b := &messageBuilder{}
		for _, field := range group {
			if err := b.consume(field); err != nil {
				return nil, err
			}
		}
		msg, err := b.build()
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func countMessages(fields []models.Field) int {
	n := 0
	for _, f := range fields {
		if f.Tag == Tag20 {
			n++
		}
	}
	return n
}

// splitMessages groups fields so that each group starts with a tag 20 field.
func splitMessages(fields []models.Field) [][]models.Field {
	var groups [][]models.Field
	for i, f := range fields {
		if f.Tag == Tag20 || i == 0 {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], f)
	}
	return groups
}

type messageBuilder struct {
	msg     models.Message
	state   state
	lastTag string

	hasRefNo, hasAccountID, hasStatementNo bool
	hasOpening, hasClosing                 bool
}

func (b *messageBuilder) consume(field models.Field) error {
	if !IsKnownTag(field.Tag) {
		return parsererror.UnknownTag(field.Tag)
	}

	next, into, ok := transition(b.state, field.Tag)
	if !ok {
		return parsererror.UnexpectedTag(&parsererror.UnexpectedTagError{
			CurrentTag:   field.Tag,
			LastTag:      b.lastTag,
			ExpectedTags: expectedTags(b.state),
		})
	}

	if err := b.apply(field, into); err != nil {
		return err
	}
	b.state, b.lastTag = next, field.Tag
	return nil
}

func (b *messageBuilder) apply(field models.Field, into target) error {
	switch field.Tag {
	case Tag20:
		ref, err := parseReference(field)
		if err != nil {
			return err
		}
		b.msg.TransactionRefNo, b.hasRefNo = ref, true

	case Tag21:
		ref, err := parseReference(field)
		if err != nil {
			return err
		}
		b.msg.RefToRelatedMsg = &ref

	case Tag25:
		id, err := parseAccountID(field)
		if err != nil {
			return err
		}
		b.msg.AccountID, b.hasAccountID = id, true

	case Tag28, Tag28C:
		no, seq, err := parseStatementNumber(field)
		if err != nil {
			return err
		}
		b.msg.StatementNo, b.msg.SequenceNo, b.hasStatementNo = no, seq, true

	case Tag60M, Tag60F:
		balance, err := parseBalance(field)
		if err != nil {
			return err
		}
		b.msg.OpeningBalance, b.hasOpening = balance, true

	case Tag61:
		line, err := parseStatementLine(field)
		if err != nil {
			return err
		}
		b.msg.StatementLines = append(b.msg.StatementLines, line)

	case Tag86:
		text, err := parseInformation(field)
		if err != nil {
			return err
		}
		if into == targetStatementLine && len(b.msg.StatementLines) > 0 {
			last := &b.msg.StatementLines[len(b.msg.StatementLines)-1]
			last.InformationToAccountOwner = appendText(last.InformationToAccountOwner, text)
		} else {
			b.msg.InformationToAccountOwner = appendText(b.msg.InformationToAccountOwner, text)
		}

	case Tag62M, Tag62F:
		balance, err := parseBalance(field)
		if err != nil {
			return err
		}
		b.msg.ClosingBalance, b.hasClosing = balance, true

	case Tag64:
		balance, err := parseAvailableBalance(field)
		if err != nil {
			return err
		}
		b.msg.ClosingAvailableBalance = &balance

	case Tag65:
		balance, err := parseAvailableBalance(field)
		if err != nil {
			return err
		}
		b.msg.ForwardAvailableBalance = &balance
	}
	return nil
}

func (b *messageBuilder) build() (models.Message, error) {
	switch {
	case !b.hasRefNo:
		return models.Message{}, parsererror.RequiredTagNotFound(Tag20)
	case !b.hasAccountID:
		return models.Message{}, parsererror.RequiredTagNotFound(Tag25)
	case !b.hasStatementNo:
		return models.Message{}, parsererror.RequiredTagNotFound(Tag28C)
	case !b.hasOpening:
		return models.Message{}, parsererror.RequiredTagNotFound("60")
	case !b.hasClosing:
		return models.Message{}, parsererror.RequiredTagNotFound("62")
	}

	msg := b.msg
	if msg.StatementLines == nil {
		msg.StatementLines = []models.StatementLine{}
	}
	return msg, nil
}

func appendText(existing *string, text string) *string {
	if existing == nil {
		return &text
	}
	joined := *existing + "\n" + text
	return &joined
}
