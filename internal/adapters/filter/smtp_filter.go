package filter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-smtp"
	"github.com/google/uuid"
	"github.com/xile1310/phish-filter/internal/config"
	"github.com/xile1310/phish-filter/internal/core"
	"github.com/xile1310/phish-filter/internal/parser"
	"go.uber.org/zap"
)

// SMTPFilter implements an SMTP content filter in the Postfix
// before-queue style: it accepts messages on a local port, classifies
// them, stamps verdict headers and optionally re-injects them into an
// upstream relay.
type SMTPFilter struct {
	service *core.FilterService
	logger  *zap.Logger
	cfg     config.ServerConfig
	server  *smtp.Server
}

// NewSMTPFilter creates a new SMTP content filter
func NewSMTPFilter(service *core.FilterService, logger *zap.Logger, cfg config.ServerConfig) *SMTPFilter {
	// If subject prefix is not set but modify subject is enabled, use default prefix
	if cfg.SubjectPrefix == "" && cfg.ModifySubject {
		cfg.SubjectPrefix = "[**PHISHING**] "
	}

	return &SMTPFilter{
		service: service,
		logger:  logger,
		cfg:     cfg,
	}
}

// Start starts the SMTP filter service
func (f *SMTPFilter) Start() error {
	f.server = smtp.NewServer(&smtpBackend{filter: f})

	f.server.Addr = f.cfg.ListenAddress
	f.server.Domain = "localhost"
	f.server.ReadTimeout = 30 * time.Second
	f.server.WriteTimeout = 30 * time.Second
	f.server.MaxMessageBytes = 30 * 1024 * 1024 // 30MB
	f.server.MaxRecipients = 50
	f.server.AllowInsecureAuth = true

	f.logger.Info("SMTP filter starting", zap.String("address", f.cfg.ListenAddress))

	go func() {
		if err := f.server.ListenAndServe(); err != nil {
			if err != smtp.ErrServerClosed {
				f.logger.Error("SMTP server error", zap.Error(err))
			}
		}
	}()

	return nil
}

// Stop stops the SMTP filter service
func (f *SMTPFilter) Stop() error {
	if f.server != nil {
		return f.server.Close()
	}
	return nil
}

// ProcessMessage classifies a parsed message and returns the verdict.
// This is mainly used for testing or direct API calls.
func (f *SMTPFilter) ProcessMessage(ctx context.Context, msg *core.ParsedMessage) (*core.ClassificationOutcome, error) {
	return f.service.ClassifyMessage(ctx, msg)
}

// sendToRelay re-injects the processed email into the upstream relay using go-smtp
func (f *SMTPFilter) sendToRelay(sender string, recipients []string, emailData []byte) error {
	relayAddr := fmt.Sprintf("%s:%d", f.cfg.RelayAddress, f.cfg.RelayPort)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	conn, err := net.DialTimeout("tcp", relayAddr, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to connect to relay: %w", err)
	}

	if err := conn.SetDeadline(time.Now().Add(30 * time.Second)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	if err := c.Hello(hostname); err != nil {
		return fmt.Errorf("EHLO failed: %w", err)
	}

	if err := c.Mail(sender, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}

	recipientOK := false
	for _, recipient := range recipients {
		if err := c.Rcpt(recipient, nil); err != nil {
			f.logger.Warn("RCPT TO failed for recipient",
				zap.String("recipient", recipient),
				zap.Error(err))
			// Continue with other recipients even if one fails
		} else {
			recipientOK = true
		}
	}

	if !recipientOK {
		return fmt.Errorf("all recipients were rejected")
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}

	if _, err := wc.Write(emailData); err != nil {
		wc.Close()
		return fmt.Errorf("failed to send email data: %w", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	if err := c.Quit(); err != nil {
		f.logger.Warn("QUIT command failed", zap.Error(err))
		// Not returning an error here as the email has already been sent
	}

	return nil
}

// breakdownSummary renders the per-rule scores as a single header value
func breakdownSummary(outcome *core.ClassificationOutcome) string {
	parts := make([]string, 0, len(outcome.Breakdown))
	for _, r := range outcome.Breakdown {
		parts = append(parts, fmt.Sprintf("%s=%.1f", r.RuleName, r.Score))
	}
	return strings.Join(parts, ", ")
}

// smtpBackend implements the go-smtp Backend interface
type smtpBackend struct {
	filter *SMTPFilter
}

// NewSession creates a new SMTP session
func (b *smtpBackend) NewSession(c *smtp.Conn) (smtp.Session, error) {
	return &smtpSession{
		filter:     b.filter,
		recipients: make([]string, 0),
	}, nil
}

// smtpSession implements the go-smtp Session interface
type smtpSession struct {
	filter     *SMTPFilter
	sender     string
	recipients []string
}

// Reset resets the session state
func (s *smtpSession) Reset() {
	s.sender = ""
	s.recipients = make([]string, 0)
}

// AuthPlain handles PLAIN authentication (not needed for the filter)
func (s *smtpSession) AuthPlain(_ []byte) error {
	return smtp.ErrAuthUnsupported
}

// Mail sets the sender address
func (s *smtpSession) Mail(from string, _ *smtp.MailOptions) error {
	s.sender = from
	return nil
}

// Rcpt adds a recipient
func (s *smtpSession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.recipients = append(s.recipients, to)
	return nil
}

// Data classifies the message body and forwards or rejects it
func (s *smtpSession) Data(r io.Reader) error {
	processingID := uuid.New().String()

	rawData, err := io.ReadAll(r)
	if err != nil {
		s.filter.logger.Error("Failed to read message data",
			zap.String("processing_id", processingID),
			zap.Error(err))
		return err
	}

	msg, err := mail.ReadMessage(bytes.NewReader(rawData))
	if err != nil {
		s.filter.logger.Error("Failed to parse email message",
			zap.String("processing_id", processingID),
			zap.Error(err))
		return err
	}

	textContent, err := extractTextFromMessage(msg)
	if err != nil {
		s.filter.logger.Error("Failed to extract text content",
			zap.String("processing_id", processingID),
			zap.Error(err))
		return err
	}

	// Prefer the From header over the envelope sender for domain checks
	from := msg.Header.Get("From")
	if from == "" {
		from = s.sender
	}
	subject := msg.Header.Get("Subject")
	if decoded, err := decodeEncodedHeader(subject); err == nil {
		subject = decoded
	}

	parsed := parser.Compose(from, subject, textContent)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	outcome, err := s.filter.service.ClassifyMessage(ctx, parsed)
	if err != nil {
		// An invalid rule configuration must never eat mail; pass the
		// message through unlabeled and keep the error visible in logs.
		s.filter.logger.Error("Failed to classify message",
			zap.String("processing_id", processingID),
			zap.Error(err),
			zap.String("sender", parsed.Sender),
			zap.String("sender_domain", parsed.SenderDomain))
		outcome = &core.ClassificationOutcome{Label: core.LabelSafe}
	}

	if outcome.IsPhishing() && s.filter.cfg.BlockPhishing {
		s.filter.logger.Info("Rejecting phishing email",
			zap.String("processing_id", processingID),
			zap.String("from", parsed.Sender),
			zap.String("sender_domain", parsed.SenderDomain),
			zap.Float64("score", outcome.TotalScore),
			zap.String("breakdown", breakdownSummary(outcome)))
		return fmt.Errorf("550 Rejected as phishing (score: %.2f)", outcome.TotalScore)
	}

	// Prepend verdict headers and preserve the original message
	var modified bytes.Buffer
	fmt.Fprintf(&modified, "%s: %s\r\n", s.filter.cfg.StatusHeader, outcome.Label)
	fmt.Fprintf(&modified, "%s: %.4f\r\n", s.filter.cfg.ScoreHeader, outcome.TotalScore)
	fmt.Fprintf(&modified, "%s: %s\r\n", s.filter.cfg.BreakdownHeader, breakdownSummary(outcome))

	prefixSubject := outcome.IsPhishing() && s.filter.cfg.ModifySubject && s.filter.cfg.SubjectPrefix != ""
	for key, values := range msg.Header {
		if prefixSubject && strings.EqualFold(key, "Subject") {
			continue
		}
		for _, value := range values {
			fmt.Fprintf(&modified, "%s: %s\r\n", key, value)
		}
	}
	if prefixSubject {
		newSubject := subject
		if !strings.HasPrefix(newSubject, s.filter.cfg.SubjectPrefix) {
			newSubject = s.filter.cfg.SubjectPrefix + newSubject
		}
		fmt.Fprintf(&modified, "Subject: %s\r\n", newSubject)
	}
	fmt.Fprintf(&modified, "\r\n")

	// Copy the original body, preserving all MIME parts and attachments
	bodyStart := bytes.Index(rawData, []byte("\r\n\r\n"))
	if bodyStart >= 0 {
		modified.Write(rawData[bodyStart+4:])
	} else if bodyStart = bytes.Index(rawData, []byte("\n\n")); bodyStart >= 0 {
		modified.Write(rawData[bodyStart+2:])
	}

	if s.filter.cfg.RelayEnabled {
		if err := s.filter.sendToRelay(s.sender, s.recipients, modified.Bytes()); err != nil {
			s.filter.logger.Error("Failed to relay email",
				zap.String("processing_id", processingID),
				zap.Error(err),
				zap.String("sender", parsed.Sender))
			return err
		}
	}

	return nil
}

// Logout handles session termination
func (s *smtpSession) Logout() error {
	return nil
}
