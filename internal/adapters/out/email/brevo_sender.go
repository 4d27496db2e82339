// Package email sends transactional mail through the Brevo HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"embroidery/internal/core/ports"
	"embroidery/internal/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const (
	DefaultAPIURL  = "https://api.brevo.com/v3/smtp/email"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 4 << 10
)

type Config struct {
	APIKey      string
	APIURL      string
	FromName    string
	FromAddress string
	Timeout     time.Duration
}

type address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type payload struct {
	Sender      address   `json:"sender"`
	To          []address `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"htmlContent"`
	TextContent string    `json:"textContent,omitempty"`
}

// BrevoSender implements ports.EmailSender.
type BrevoSender struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

func NewBrevoSender(cfg Config, log *logger.Logger) *BrevoSender {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BrevoSender{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// Send posts msg to Brevo. A missing API key or sender address yields
// ports.ErrEmailNotConfigured; any transport failure or non-2xx answer
// yields ports.ErrEmailUnavailable.
func (s *BrevoSender) Send(ctx context.Context, msg ports.Email) error {
	apiKey := strings.TrimSpace(s.cfg.APIKey)
	if apiKey == "" || strings.TrimSpace(s.cfg.FromAddress) == "" {
		return ports.ErrEmailNotConfigured
	}

	body, err := json.Marshal(payload{
		Sender:      address{Name: s.cfg.FromName, Email: s.cfg.FromAddress},
		To:          []address{{Email: msg.To}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: PlainText(msg.HTML),
	})
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error(ctx, "brevo request failed", err)
		return errors.Join(ports.ErrEmailUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err = fmt.Errorf("brevo responded %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		s.log.Error(ctx, "brevo rejected email", err)
		return errors.Join(ports.ErrEmailUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// PlainText renders the readable text of an HTML body, one block per line.
// Links keep their target in brackets.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if text := strings.TrimSpace(a.Text()); href != "" && text != href {
			a.SetText(text + " [" + href + "]")
		}
	})

	var lines []string
	doc.Find("h1,h2,h3,p,li,a").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "a" && sel.ParentsFiltered("p,li,h1,h2,h3").Length() > 0 {
			return
		}
		if t := strings.Join(strings.Fields(sel.Text()), " "); t != "" {
			lines = append(lines, t)
		}
	})
	return strings.Join(lines, "\n")
}
