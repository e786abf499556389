package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationMail(t *testing.T) {
	m := ActivationMail("ab12cd")
	assert.Equal(t, "One Time Activation Code", m.Subject)
	assert.Contains(t, m.Text, "AB12CD")
	assert.Contains(t, m.HTML, "<b>AB12CD</b>")
}

func TestPasswordResetMail(t *testing.T) {
	m := PasswordResetMail("https://example.com/reset?code=xyz")
	assert.Equal(t, "Password Reset Link", m.Subject)
	assert.Contains(t, m.Text, "https://example.com/reset?code=xyz")
	assert.Contains(t, m.HTML, `href="https://example.com/reset?code=xyz"`)
}
