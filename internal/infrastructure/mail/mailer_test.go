package mail

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Ginebra-api/pkg/config"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

type captureConn struct {
	from   string
	to     []string
	body   bytes.Buffer
	closed bool
}

func (c *captureConn) Send(from string, to []string, msg io.WriterTo) error {
	c.from, c.to = from, to
	_, err := msg.WriteTo(&c.body)
	return err
}

func (c *captureConn) Close() error { c.closed = true; return nil }

type fakeDialer struct {
	conn *captureConn
	err  error
}

func (d fakeDialer) Dial() (gomail.SendCloser, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}

var mailCfg = config.MailConfig{From: "no-responder@ginebra.test", ResetURL: "https://app.ginebra.test/restablecer"}

func TestSMTPMailer_EnviaEnlace(t *testing.T) {
	conn := &captureConn{}
	m := NewSMTPMailer(mailCfg, fakeDialer{conn: conn}, nil)

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@ginebra.test", "Ana", "tok.en"))
	assert.Equal(t, "no-responder@ginebra.test", conn.from)
	assert.Equal(t, []string{"ana@ginebra.test"}, conn.to)
	assert.True(t, conn.closed)
	assert.Contains(t, conn.body.String(), "Recuperaci=C3=B3n")
	assert.Contains(t, conn.body.String(), "token=3Dtok.en", "cuerpo en quoted-printable")
}

func TestSMTPMailer_ErrorDeConexion(t *testing.T) {
	m := NewSMTPMailer(mailCfg, fakeDialer{err: errors.New("connection refused")}, nil)
	err := m.SendPasswordReset(context.Background(), "ana@ginebra.test", "Ana", "t")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPMailer_ContextoCancelado(t *testing.T) {
	conn := &captureConn{}
	m := NewSMTPMailer(mailCfg, fakeDialer{conn: conn}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendPasswordReset(ctx, "ana@ginebra.test", "Ana", "t"), context.Canceled)
	assert.Empty(t, conn.to)
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	m := New(config.MailConfig{ResetURL: "http://localhost:3000/r"}, logger.New(logger.Config{Env: "production", Output: &buf}))

	require.NoError(t, m.SendPasswordReset(context.Background(), "ana@ginebra.test", "Ana", "abc"))
	assert.Contains(t, buf.String(), `"link":"http://localhost:3000/r?token=abc"`)
}

func TestResetLink(t *testing.T) {
	assert.Equal(t, "https://x.test/r?lang=es&token=a%2Bb", resetLink("https://x.test/r?lang=es", "a+b"))
	assert.Equal(t, "solo-token", resetLink("", "solo-token"))
}
