// Package mail composes and delivers ranking results by email. Delivery
// is single-shot: the caller gets an error or success, never a retry.
package mail

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/papapumpkin/verdict/internal/report"
)

// ErrNoRecipients indicates a message composed without any recipients.
var ErrNoRecipients = errors.New("no recipients")

// Message is a composed result notification ready for a Sender.
type Message struct {
	From           string
	To             []string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// Compose builds the result message for a finished ranking: a plain-text
// summary of the ordering plus the result CSV as an attachment.
func Compose(rep *report.Report, csvData []byte, from string, to []string) (*Message, error) {
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}

	subject := "verdict ranking"
	if rep.Title != "" {
		subject += ": " + rep.Title
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ranked %d alternatives across %d criteria.\n\n",
		len(rep.Rows), len(rep.Criteria))
	for _, row := range rep.Rows {
		fmt.Fprintf(&b, "%3d. %-20s score %.4f\n", row.Rank, row.Name, row.Score)
	}
	b.WriteString("\nThe full result table is attached as CSV.\n")

	return &Message{
		From:           from,
		To:             to,
		Subject:        subject,
		Body:           b.String(),
		AttachmentName: "ranking.csv",
		Attachment:     csvData,
	}, nil
}

// Encode renders the message as a complete MIME document: headers, a
// text/plain part, and a base64 CSV attachment.
func (m *Message) Encode() ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(m.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", m.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	part, err := mw.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("creating text part: %w", err)
	}
	if _, err := part.Write([]byte(m.Body)); err != nil {
		return nil, fmt.Errorf("writing text part: %w", err)
	}

	if len(m.Attachment) > 0 {
		attachHeader := textproto.MIMEHeader{}
		attachHeader.Set("Content-Type", "text/csv; charset=utf-8")
		attachHeader.Set("Content-Transfer-Encoding", "base64")
		attachHeader.Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", m.AttachmentName))
		part, err := mw.CreatePart(attachHeader)
		if err != nil {
			return nil, fmt.Errorf("creating attachment part: %w", err)
		}

		enc := base64.StdEncoding.EncodeToString(m.Attachment)
		// Wrap base64 at 76 columns per RFC 2045.
		for len(enc) > 0 {
			n := 76
			if n > len(enc) {
				n = len(enc)
			}
			if _, err := fmt.Fprintf(part, "%s\r\n", enc[:n]); err != nil {
				return nil, fmt.Errorf("writing attachment: %w", err)
			}
			enc = enc[n:]
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing MIME writer: %w", err)
	}
	return buf.Bytes(), nil
}
