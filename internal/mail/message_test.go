package mail

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/papapumpkin/verdict/internal/report"
)

func sampleReport() *report.Report {
	return &report.Report{
		Title:    "phones",
		Criteria: []string{"storage", "price"},
		Rows: []report.Row{
			{Name: "M4", Values: []float64{4, 5}, Score: 1.0, Rank: 1},
			{Name: "M2", Values: []float64{2, 7}, Score: 0.41, Rank: 2},
		},
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	csvData := []byte("name,storage,price,score,rank\n")
	msg, err := Compose(sampleReport(), csvData, "verdict@example.com",
		[]string{"ops@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if msg.Subject != "verdict ranking: phones" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Ranked 2 alternatives across 2 criteria") {
		t.Errorf("body missing summary line:\n%s", msg.Body)
	}
	if !strings.Contains(msg.Body, "1. M4") {
		t.Errorf("body missing rank line:\n%s", msg.Body)
	}
	if !bytes.Equal(msg.Attachment, csvData) {
		t.Error("attachment does not carry the CSV")
	}
}

func TestCompose_NoRecipients(t *testing.T) {
	t.Parallel()
	_, err := Compose(sampleReport(), nil, "verdict@example.com", nil)
	if !errors.Is(err, ErrNoRecipients) {
		t.Errorf("err = %v, want ErrNoRecipients", err)
	}
}

func TestEncode_ParsesAsMIME(t *testing.T) {
	t.Parallel()

	csvData := []byte("name,score,rank\nM4,1.000000,1\n")
	msg, err := Compose(sampleReport(), csvData, "verdict@example.com",
		[]string{"a@example.com", "b@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	raw, err := msg.Encode()
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("encoded message does not parse: %v", err)
	}
	if got := parsed.Header.Get("Subject"); got != "verdict ranking: phones" {
		t.Errorf("Subject header = %q", got)
	}
	if got := parsed.Header.Get("To"); !strings.Contains(got, "b@example.com") {
		t.Errorf("To header = %q", got)
	}

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	if err != nil {
		t.Fatal(err)
	}
	if mediaType != "multipart/mixed" {
		t.Errorf("media type = %q, want multipart/mixed", mediaType)
	}

	mr := multipart.NewReader(parsed.Body, params["boundary"])

	// First part: the plain-text summary.
	text, err := mr.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(text)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "M4") {
		t.Errorf("text part missing summary:\n%s", body)
	}

	// Second part: the base64 CSV attachment.
	attach, err := mr.NextPart()
	if err != nil {
		t.Fatal(err)
	}
	if got := attach.Header.Get("Content-Transfer-Encoding"); got != "base64" {
		t.Errorf("attachment encoding = %q", got)
	}
	encoded, err := io.ReadAll(attach)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := base64.StdEncoding.DecodeString(
		strings.ReplaceAll(strings.ReplaceAll(string(encoded), "\r", ""), "\n", ""))
	if err != nil {
		t.Fatalf("attachment is not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, csvData) {
		t.Errorf("attachment round-trip = %q, want %q", decoded, csvData)
	}
}

func TestSMTPSender_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sender SMTPSender
		ok     bool
	}{
		{"valid", SMTPSender{Host: "smtp.example.com", Port: 587}, true},
		{"no host", SMTPSender{Port: 587}, false},
		{"zero port", SMTPSender{Host: "smtp.example.com"}, false},
		{"port too large", SMTPSender{Host: "smtp.example.com", Port: 70000}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.sender.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
