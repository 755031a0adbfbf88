package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"ritter-digital-backend/config"
	"ritter-digital-backend/internal/domain"
)

// Client talks to the Brevo v3 HTTP API for transactional email and
// newsletter contact management. It implements domain.Mailer.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	senderName   string
	senderEmail  string
	contactInbox string

	contactTemplateID    int
	newsletterTemplateID int
	newsletterListID     int64
}

// NewClient creates a Brevo client from the application configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:               cfg.BrevoAPIKey,
		baseURL:              strings.TrimRight(cfg.BrevoAPIURL, "/"),
		httpClient:           &http.Client{Timeout: 10 * time.Second},
		senderName:           cfg.SenderName,
		senderEmail:          cfg.SenderEmail,
		contactInbox:         cfg.ContactEmailTo,
		contactTemplateID:    cfg.ContactTemplateID,
		newsletterTemplateID: cfg.NewsletterTemplateID,
		newsletterListID:     cfg.NewsletterListID,
	}
}

// IsConfigured checks if the client has an API key to authenticate with
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type emailPayload struct {
	Sender      recipient      `json:"sender"`
	To          []recipient    `json:"to"`
	Subject     string         `json:"subject,omitempty"`
	HTMLContent string         `json:"htmlContent,omitempty"`
	TemplateID  int            `json:"templateId,omitempty"`
	Params      map[string]any `json:"params,omitempty"`
	ReplyTo     *recipient     `json:"replyTo,omitempty"`
}

type contactPayload struct {
	Email         string         `json:"email"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	ListIDs       []int64        `json:"listIds,omitempty"`
	UpdateEnabled bool           `json:"updateEnabled"`
}

// apiError is the error body Brevo returns for non-2xx responses
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// noticeTemplate renders the organization-facing contact notice
var noticeTemplate = template.Must(template.New("notice").Parse(`<h2>Neue Kontaktanfrage</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>E-Mail:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Telefon:</strong> {{.Phone}}</p>{{end}}
{{if .Company}}<p><strong>Unternehmen:</strong> {{.Company}}</p>{{end}}
<p><strong>Nachricht:</strong></p>
<p>{{.Message}}</p>
<p><strong>Datenschutz:</strong> Akzeptiert</p>`))

type noticeData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Message   template.HTML
}

// SendContactNotice emails the submission to the organization inbox,
// with the submitter's address as reply-to so staff can answer directly.
func (c *Client) SendContactNotice(ctx context.Context, req *domain.ContactRequest) error {
	var body bytes.Buffer
	data := noticeData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Message:   messageHTML(req.Message),
	}
	if err := noticeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notice template: %w", err)
	}

	payload := emailPayload{
		Sender: recipient{Name: c.senderName, Email: c.senderEmail},
		To: []recipient{
			{Email: c.contactInbox, Name: c.senderName},
		},
		Subject:     fmt.Sprintf("Neue Kontaktanfrage von %s", req.FullName()),
		HTMLContent: body.String(),
		ReplyTo:     &recipient{Email: req.Email, Name: req.FullName()},
	}

	_, err := c.post(ctx, "/smtp/email", payload)
	return err
}

// SendContactConfirmation sends the acknowledgement email to the submitter
// using the hosted confirmation template.
func (c *Client) SendContactConfirmation(ctx context.Context, email, name string) error {
	payload := emailPayload{
		Sender:     recipient{Name: c.senderName, Email: c.senderEmail},
		To:         []recipient{{Email: email, Name: name}},
		Subject:    "Vielen Dank für Ihre Anfrage | Ritter Digital GmbH",
		TemplateID: c.contactTemplateID,
		Params: map[string]any{
			"FIRSTNAME": name,
			"EMAIL":     email,
		},
	}

	_, err := c.post(ctx, "/smtp/email", payload)
	return err
}

// SubscribeContact adds the address to the newsletter list. updateEnabled
// is deliberately false so the provider reports an existing contact
// (duplicate_parameter) instead of silently updating it.
func (c *Client) SubscribeContact(ctx context.Context, req *domain.NewsletterRequest) (bool, error) {
	payload := contactPayload{
		Email: req.Email,
		Attributes: map[string]any{
			"FIRSTNAME":  req.FirstName,
			"LASTNAME":   req.LastName,
			"SOURCE":     "Website",
			"OPTIN_DATE": time.Now().UTC().Format(time.RFC3339),
		},
		ListIDs:       []int64{c.newsletterListID},
		UpdateEnabled: false,
	}

	status, err := c.post(ctx, "/contacts", payload)
	if err != nil {
		if isDuplicate(status, err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// SendNewsletterConfirmation sends the signup confirmation template
func (c *Client) SendNewsletterConfirmation(ctx context.Context, req *domain.NewsletterRequest) error {
	to := recipient{Email: req.Email}
	if req.FirstName != "" {
		to.Name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}

	payload := emailPayload{
		Sender:     recipient{Name: c.senderName, Email: c.senderEmail},
		To:         []recipient{to},
		TemplateID: c.newsletterTemplateID,
		Params: map[string]any{
			"FIRSTNAME": req.FirstName,
			"EMAIL":     req.Email,
		},
	}

	_, err := c.post(ctx, "/smtp/email", payload)
	return err
}

// requestError carries the provider error code for callers that branch on it
type requestError struct {
	status  int
	code    string
	message string
}

func (e *requestError) Error() string {
	if e.code != "" {
		return fmt.Sprintf("brevo: %s (%s)", e.message, e.code)
	}
	return fmt.Sprintf("brevo: request failed with status %d", e.status)
}

// post sends a JSON payload to the Brevo API and returns the status code
func (c *Client) post(ctx context.Context, endpoint string, payload any) (int, error) {
	if !c.IsConfigured() {
		return 0, fmt.Errorf("brevo: API key is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("brevo: failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("brevo: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("brevo: request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, nil
	}

	var apiErr apiError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &apiErr)

	return resp.StatusCode, &requestError{
		status:  resp.StatusCode,
		code:    apiErr.Code,
		message: apiErr.Message,
	}
}

// isDuplicate reports whether the provider signaled an existing contact
func isDuplicate(status int, err error) bool {
	if status == http.StatusConflict {
		return true
	}
	if reqErr, ok := err.(*requestError); ok {
		return reqErr.code == "duplicate_parameter"
	}
	return false
}

// messageHTML escapes the free-text message and keeps its line breaks
func messageHTML(msg string) template.HTML {
	escaped := template.HTMLEscapeString(msg)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
