package gmailclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("laden@example.com", "chef@example.com", "Dienstplan Mai 2026", "Zeile 1\nZeile 2")

	assert.Equal(t,
		"From: laden@example.com\r\n"+
			"To: chef@example.com\r\n"+
			"Subject: Dienstplan Mai 2026\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"Zeile 1\r\nZeile 2",
		msg)
}

func TestBuildMessage_EncodesUmlautSubject(t *testing.T) {
	msg := buildMessage("", "chef@example.com", "Dienstplan März 2026", "—")

	assert.NotContains(t, msg, "From:")
	assert.Contains(t, msg, "Subject: =?utf-8?q?Dienstplan_M=C3=A4rz_2026?=\r\n")
	assert.Contains(t, msg, "\r\n\r\n—")
}
