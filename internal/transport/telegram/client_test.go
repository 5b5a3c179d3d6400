package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IT-Union-DAO/tg-admin/internal/shared/config"
	"github.com/go-telegram/bot"
)

// botAPIStub fakes the Telegram Bot API over httptest. Method params arrive
// as multipart form fields, responses are the usual {"ok":...,"result":...}
// envelopes.
type botAPIStub struct {
	t *testing.T

	deleteResponse string
	deleteCalls    []map[string]string

	setWebhookResponse string
	setWebhookCalls    []map[string]string

	getMeResponse string
	getMeStatus   int
}

func (s *botAPIStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/deleteMessage"):
			s.deleteCalls = append(s.deleteCalls, map[string]string{
				"chat_id":    r.FormValue("chat_id"),
				"message_id": r.FormValue("message_id"),
			})
			w.Write([]byte(s.deleteResponse))

		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			s.setWebhookCalls = append(s.setWebhookCalls, map[string]string{
				"url": r.FormValue("url"),
			})
			w.Write([]byte(s.setWebhookResponse))

		case strings.HasSuffix(r.URL.Path, "/getMe"):
			if s.getMeStatus != 0 {
				w.WriteHeader(s.getMeStatus)
				return
			}
			w.Write([]byte(s.getMeResponse))

		default:
			s.t.Errorf("unexpected Bot API call: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newTestClient(t *testing.T, stub *botAPIStub) *Client {
	t.Helper()

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	b, err := bot.New("test_token", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	if err != nil {
		t.Fatalf("failed to create bot: %v", err)
	}

	cfg := &config.Config{
		TelegramBotToken: "test_token",
		TelegramDomain:   "test.domain.com",
		TelegramAPIURL:   srv.URL,
	}

	return NewClient(cfg, b)
}

func TestDeleteMessage(t *testing.T) {
	stub := &botAPIStub{t: t, deleteResponse: `{"ok":true,"result":true}`}
	client := newTestClient(t, stub)

	if !client.DeleteMessage(context.Background(), 100, 5) {
		t.Fatal("expected delete to succeed")
	}

	if len(stub.deleteCalls) != 1 {
		t.Fatalf("expected one deleteMessage call, got %d", len(stub.deleteCalls))
	}
	call := stub.deleteCalls[0]
	if call["chat_id"] != "100" || call["message_id"] != "5" {
		t.Errorf("expected delete (100, 5), got (%s, %s)", call["chat_id"], call["message_id"])
	}
}

func TestDeleteMessageRemoteError(t *testing.T) {
	stub := &botAPIStub{
		t:              t,
		deleteResponse: `{"ok":false,"error_code":400,"description":"Bad Request: message to delete not found"}`,
	}
	client := newTestClient(t, stub)

	if client.DeleteMessage(context.Background(), 100, 5) {
		t.Fatal("expected delete to fail on remote error")
	}
}

func TestRegisterWebhook(t *testing.T) {
	stub := &botAPIStub{t: t, setWebhookResponse: `{"ok":true,"result":true}`}
	client := newTestClient(t, stub)

	if !client.RegisterWebhook(context.Background()) {
		t.Fatal("expected webhook registration to succeed")
	}

	if len(stub.setWebhookCalls) != 1 {
		t.Fatalf("expected one setWebhook call, got %d", len(stub.setWebhookCalls))
	}
	want := "https://test.domain.com/webhook"
	if got := stub.setWebhookCalls[0]["url"]; got != want {
		t.Errorf("expected webhook URL %q, got %q", want, got)
	}
}

func TestRegisterWebhookRemoteError(t *testing.T) {
	stub := &botAPIStub{
		t:                  t,
		setWebhookResponse: `{"ok":false,"error_code":401,"description":"Unauthorized"}`,
	}
	client := newTestClient(t, stub)

	if client.RegisterWebhook(context.Background()) {
		t.Fatal("expected webhook registration to fail")
	}
}

func TestGetBotInfo(t *testing.T) {
	stub := &botAPIStub{
		t:             t,
		getMeResponse: `{"ok":true,"result":{"id":42,"is_bot":true,"first_name":"Admin","username":"admin_bot"}}`,
	}
	client := newTestClient(t, stub)

	info, err := client.GetBotInfo(context.Background())
	if err != nil {
		t.Fatalf("expected bot info, got error: %v", err)
	}
	if info.ID != 42 || !info.IsBot {
		t.Errorf("unexpected bot identity: %+v", info)
	}
	if info.Username != "admin_bot" || info.FirstName != "Admin" {
		t.Errorf("unexpected bot names: %+v", info)
	}
}

func TestGetBotInfoTransportFault(t *testing.T) {
	stub := &botAPIStub{t: t, getMeStatus: http.StatusInternalServerError}
	client := newTestClient(t, stub)

	info, err := client.GetBotInfo(context.Background())
	if err == nil {
		t.Fatal("expected error on transport fault")
	}
	if info != nil {
		t.Errorf("expected nil bot info, got %+v", info)
	}
}
