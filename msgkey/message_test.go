package msgkey_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goutcome/outcome_go/msgkey"
)

func TestNewMessageRoundTrip(t *testing.T) {
	def := msgkey.MustDefinitionWithDisplayKey("user.tooYoung", "errors.user.tooYoung").
		WithStringParameter("name").
		WithIntParameter("age")

	msg, err := msgkey.NewMessage(def, "John", 5)
	assert.NoError(t, err)
	assert.Equal(t, []string{"John", "5"}, msg.Parameters())
	assert.Equal(t, "errors.user.tooYoung", msg.TranslationKey())
	assert.Same(t, def, msg.Definition())
}

func TestNewMessageSwappedArgumentsMismatch(t *testing.T) {
	def := msgkey.MustDefinition("user.tooYoung").
		WithStringParameter("name").
		WithIntParameter("age")

	_, err := msgkey.NewMessage(def, 5, "John")

	var mismatch *msgkey.ArgumentMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestMustMessagePanicsOnMismatch(t *testing.T) {
	def := msgkey.MustDefinition("user.tooYoung").WithIntParameter("age")

	assert.Panics(t, func() {
		msgkey.MustMessage(def, "not an age at all")
	})
}

func TestRenderWithoutParameters(t *testing.T) {
	def := msgkey.MustDefinition("user.notFound")
	msg := msgkey.MustMessage(def)
	assert.Equal(t, "ValidationKey: user.notFound", msg.Render())
}

func TestRenderWithParameters(t *testing.T) {
	def := msgkey.MustDefinition("user.tooYoung").
		WithStringParameter("name").
		WithIntParameter("age")
	msg := msgkey.MustMessage(def, "John", 5)
	assert.Equal(t, "ValidationKey: user.tooYoung Parameters: John, 5", msg.Render())
}

func TestRenderEscapesBraces(t *testing.T) {
	def := msgkey.MustDefinition("template.bad").WithStringParameter("value")
	msg := msgkey.MustMessage(def, "{placeholder}")
	assert.Equal(t, "ValidationKey: template.bad Parameters: {{placeholder}}", msg.Render())
}
