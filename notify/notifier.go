// Package notify declares the mail notifier capability the auth flows depend
// on and builds the messages they send. The transport itself belongs to the
// embedding application.
package notify

import (
	"context"
	"fmt"
	"strings"
)

// Mail is a rendered message ready for a transport.
type Mail struct {
	Subject string
	Text    string
	HTML    string
}

// Notifier delivers mail. Implementations report whether the message was
// accepted; a delivery failure must not crash the caller.
type Notifier interface {
	Send(ctx context.Context, to string, mail Mail) (accepted bool, err error)
}

// ActivationMail renders the one-time activation code message. The code is
// displayed upper-case but verified case-insensitively.
func ActivationMail(code string) Mail {
	display := strings.ToUpper(code)
	return Mail{
		Subject: "One Time Activation Code",
		Text:    fmt.Sprintf("This is your one time activation code: %s", display),
		HTML:    fmt.Sprintf("<p>This is your one time activation code: <b>%s</b></p>", display),
	}
}

// PasswordResetMail renders the password reset link message.
func PasswordResetMail(link string) Mail {
	return Mail{
		Subject: "Password Reset Link",
		Text:    fmt.Sprintf("You can click here to reset your password: %s", link),
		HTML:    fmt.Sprintf(`<p>You can click here to reset your password: <a href="%s">Reset Password</a></p>`, link),
	}
}
