package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Client отправляет письма через обычный SMTP (PLAIN auth, без TLS-обвязки —
// её даёт релей). Пустой addr переводит клиент в режим заглушки.
type Client struct {
	addr string
	from string
	auth smtp.Auth
}

func New(addr, from, user, password string) *Client {
	c := &Client{addr: addr, from: from}
	if user != "" {
		host := addr
		if i := strings.IndexByte(addr, ':'); i >= 0 {
			host = addr[:i]
		}
		c.auth = smtp.PlainAuth("", user, password, host)
	}
	return c
}

func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if c.addr == "" {
		// Локальная разработка без SMTP-релея.
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		c.from, to, subject, body)
	if err := smtp.SendMail(c.addr, c.auth, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
