package terminal

import (
	"errors"
	"testing"

	"github.com/smartlms/smartlms-cli/internal/utils/test/assert"
)

func TestFollowup(t *testing.T) {
	t.Run("should print a single item on the same line", func(t *testing.T) {
		msg, err := newFollowup(MsgSuggestedCommand, []interface{}{"smartlms login"}).Message()
		assert.Nil(t, err)
		assert.Equal(t, "Try running instead: smartlms login", msg)
	})

	t.Run("should print multiple items on their own lines", func(t *testing.T) {
		msg, err := newFollowup(MsgSuggestedCommand, []interface{}{"smartlms login", "smartlms register"}).Message()
		assert.Nil(t, err)
		assert.Equal(t, `Try running instead:
  smartlms login
  smartlms register`, msg)
	})

	t.Run("should fail without any items", func(t *testing.T) {
		_, err := newFollowup(MsgReferToDocs, nil).Message()
		assert.Equal(t, errors.New("For more information: nothing to follow up with"), err)
	})

	t.Run("should produce a payload with the message and items", func(t *testing.T) {
		keys, payload, err := newFollowup(MsgSuggestedCommand, []interface{}{"smartlms login"}).Payload()
		assert.Nil(t, err)
		assert.Equal(t, []string{"message", "data"}, keys)
		assert.Equal(t, map[string]interface{}{"message": MsgSuggestedCommand, "data": []string{"smartlms login"}}, payload)
	})
}
