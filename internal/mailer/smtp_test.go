package mailer

import (
	"bytes"
	"testing"

	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_WithAttachment(t *testing.T) {
	msg, err := buildMessage("tickets@example.com", domain.Email{
		To:      "parent@example.com",
		Subject: "Your Ticket for Adventure",
		HTML:    "<p>hello</p>",
		Attachments: []domain.Attachment{{
			Filename:    domain.TicketFilename,
			ContentType: "image/png",
			Content:     []byte{0x89, 'P', 'N', 'G'},
		}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "parent@example.com")
	assert.Contains(t, raw, "Your Ticket for Adventure")
	assert.Contains(t, raw, domain.TicketFilename)
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := buildMessage("tickets@example.com", domain.Email{To: "not an address"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDelivery)
}
