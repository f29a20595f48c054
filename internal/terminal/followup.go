package terminal

import (
	"fmt"
	"strings"
)

// set of followup messages
const (
	MsgReferToDocs      = "For more information"
	MsgSuggestedCommand = "Try running instead"
)

type followup struct {
	message string
	items   []string
}

func newFollowup(message string, items []interface{}) followup {
	f := followup{message: message, items: make([]string, 0, len(items))}
	for _, item := range items {
		f.items = append(f.items, parseValue(item))
	}
	return f
}

func (f followup) Message() (string, error) {
	if len(f.items) == 0 {
		return "", fmt.Errorf("%s: nothing to follow up with", f.message)
	}
	if len(f.items) == 1 {
		return fmt.Sprintf("%s: %s", f.message, f.items[0]), nil
	}
	return fmt.Sprintf("%s:\n%s%s", f.message, Indent, strings.Join(f.items, "\n"+Indent)), nil
}

func (f followup) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: f.message,
		logFieldData:    f.items,
	}, nil
}
