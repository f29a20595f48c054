package terminal

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

const (
	logFieldDoc = "doc"
)

var (
	jsonDocumentFields = []string{logFieldMessage, logFieldDoc}
)

type jsonDocument struct {
	message string
	data    interface{}
}

func (j jsonDocument) Message() (string, error) {
	doc, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", err
	}
	if j.message == "" {
		return string(doc), nil
	}
	return fmt.Sprintf("%s\n%s", color.New(color.Bold).Sprint(j.message), doc), nil
}

func (j jsonDocument) Payload() ([]string, map[string]interface{}, error) {
	return jsonDocumentFields, map[string]interface{}{
		logFieldMessage: j.message,
		logFieldDoc:     j.data,
	}, nil
}
