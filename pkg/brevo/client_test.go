package brevo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ritter-digital-backend/config"
	"ritter-digital-backend/internal/domain"
	"ritter-digital-backend/pkg/brevo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records the last request the fake provider received
type capture struct {
	path    string
	apiKey  string
	payload map[string]any
}

func fakeProvider(t *testing.T, status int, body string, cap *capture) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.path = r.URL.Path
		cap.apiKey = r.Header.Get("api-key")
		cap.payload = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&cap.payload)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func testClient(serverURL string) *brevo.Client {
	return brevo.NewClient(&config.Config{
		BrevoAPIKey:          "test-key",
		BrevoAPIURL:          serverURL,
		SenderName:           "Ritter Digital GmbH",
		SenderEmail:          "kontakt@ritterdigital.de",
		ContactEmailTo:       "kontakt@ritterdigital.de",
		ContactTemplateID:    1,
		NewsletterTemplateID: 2,
		NewsletterListID:     2,
	})
}

func TestSendContactNotice(t *testing.T) {
	var cap capture
	srv := fakeProvider(t, http.StatusCreated, `{"messageId":"1"}`, &cap)
	defer srv.Close()

	client := testClient(srv.URL)
	req := &domain.ContactRequest{
		FirstName: "Max",
		LastName:  "Mustermann",
		Email:     "max@example.com",
		Phone:     "+491701234567",
		Company:   "Beispiel GmbH",
		Message:   "Hallo,\nich interessiere mich für Ihre Leistungen.",
		Privacy:   true,
	}

	err := client.SendContactNotice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/smtp/email", cap.path)
	assert.Equal(t, "test-key", cap.apiKey)
	assert.Equal(t, "Neue Kontaktanfrage von Max Mustermann", cap.payload["subject"])

	// Staff reply directly to the submitter
	replyTo := cap.payload["replyTo"].(map[string]any)
	assert.Equal(t, "max@example.com", replyTo["email"])

	// Notice goes to the organization inbox, not user input
	to := cap.payload["to"].([]any)[0].(map[string]any)
	assert.Equal(t, "kontakt@ritterdigital.de", to["email"])

	// Every submission field lands in the notice body
	html := cap.payload["htmlContent"].(string)
	assert.Contains(t, html, "Max Mustermann")
	assert.Contains(t, html, "max@example.com")
	assert.Contains(t, html, "+491701234567")
	assert.Contains(t, html, "Beispiel GmbH")
	assert.Contains(t, html, "Hallo,<br>ich interessiere mich für Ihre Leistungen.")
}

func TestSendContactNoticeEscapesHTML(t *testing.T) {
	var cap capture
	srv := fakeProvider(t, http.StatusCreated, `{"messageId":"1"}`, &cap)
	defer srv.Close()

	client := testClient(srv.URL)
	req := &domain.ContactRequest{
		FirstName: "Max",
		LastName:  "Mustermann",
		Email:     "max@example.com",
		Message:   "<script>alert('x')</script> bitte melden",
		Privacy:   true,
	}

	require.NoError(t, client.SendContactNotice(context.Background(), req))

	html := cap.payload["htmlContent"].(string)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestSendContactNoticeOmitsEmptyOptionalFields(t *testing.T) {
	var cap capture
	srv := fakeProvider(t, http.StatusCreated, `{"messageId":"1"}`, &cap)
	defer srv.Close()

	client := testClient(srv.URL)
	req := &domain.ContactRequest{
		FirstName: "Max",
		LastName:  "Mustermann",
		Email:     "max@example.com",
		Message:   "Hallo, ich interessiere mich für Ihre Leistungen.",
		Privacy:   true,
	}

	require.NoError(t, client.SendContactNotice(context.Background(), req))

	html := cap.payload["htmlContent"].(string)
	assert.NotContains(t, html, "Telefon")
	assert.NotContains(t, html, "Unternehmen")
}

func TestSendContactConfirmation(t *testing.T) {
	var cap capture
	srv := fakeProvider(t, http.StatusCreated, `{"messageId":"2"}`, &cap)
	defer srv.Close()

	client := testClient(srv.URL)
	err := client.SendContactConfirmation(context.Background(), "max@example.com", "Max Mustermann")
	require.NoError(t, err)

	assert.Equal(t, "/smtp/email", cap.path)
	assert.Equal(t, float64(1), cap.payload["templateId"])
	params := cap.payload["params"].(map[string]any)
	assert.Equal(t, "Max Mustermann", params["FIRSTNAME"])
	assert.Equal(t, "max@example.com", params["EMAIL"])
}

func TestSubscribeContact(t *testing.T) {
	ctx := context.Background()
	req := &domain.NewsletterRequest{
		Email:     "max@example.com",
		FirstName: "Max",
		LastName:  "Mustermann",
		Privacy:   true,
	}

	t.Run("new contact", func(t *testing.T) {
		var cap capture
		srv := fakeProvider(t, http.StatusCreated, `{"id":123}`, &cap)
		defer srv.Close()

		already, err := testClient(srv.URL).SubscribeContact(ctx, req)
		require.NoError(t, err)
		assert.False(t, already)

		assert.Equal(t, "/contacts", cap.path)
		assert.Equal(t, "max@example.com", cap.payload["email"])
		assert.Equal(t, false, cap.payload["updateEnabled"])
		assert.Equal(t, []any{float64(2)}, cap.payload["listIds"])
		attrs := cap.payload["attributes"].(map[string]any)
		assert.Equal(t, "Max", attrs["FIRSTNAME"])
		assert.Equal(t, "Website", attrs["SOURCE"])
		assert.NotEmpty(t, attrs["OPTIN_DATE"])
	})

	t.Run("duplicate_parameter means already subscribed", func(t *testing.T) {
		var cap capture
		srv := fakeProvider(t, http.StatusBadRequest, `{"code":"duplicate_parameter","message":"Contact already exist"}`, &cap)
		defer srv.Close()

		already, err := testClient(srv.URL).SubscribeContact(ctx, req)
		require.NoError(t, err)
		assert.True(t, already)
	})

	t.Run("conflict status means already subscribed", func(t *testing.T) {
		var cap capture
		srv := fakeProvider(t, http.StatusConflict, `{}`, &cap)
		defer srv.Close()

		already, err := testClient(srv.URL).SubscribeContact(ctx, req)
		require.NoError(t, err)
		assert.True(t, already)
	})

	t.Run("other provider errors are failures", func(t *testing.T) {
		var cap capture
		srv := fakeProvider(t, http.StatusInternalServerError, `{"code":"internal","message":"boom"}`, &cap)
		defer srv.Close()

		_, err := testClient(srv.URL).SubscribeContact(ctx, req)
		assert.Error(t, err)
	})
}

func TestSendNewsletterConfirmation(t *testing.T) {
	var cap capture
	srv := fakeProvider(t, http.StatusCreated, `{"messageId":"3"}`, &cap)
	defer srv.Close()

	client := testClient(srv.URL)
	req := &domain.NewsletterRequest{Email: "max@example.com", FirstName: "Max", Privacy: true}

	require.NoError(t, client.SendNewsletterConfirmation(context.Background(), req))

	assert.Equal(t, float64(2), cap.payload["templateId"])
	to := cap.payload["to"].([]any)[0].(map[string]any)
	assert.Equal(t, "max@example.com", to["email"])
	assert.Equal(t, "Max", to["name"])
}

func TestUnconfiguredClient(t *testing.T) {
	client := brevo.NewClient(&config.Config{BrevoAPIURL: "https://api.brevo.com/v3"})

	assert.False(t, client.IsConfigured())
	err := client.SendContactConfirmation(context.Background(), "max@example.com", "Max")
	assert.Error(t, err)
}
