package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshetovitsme/tg-wp-bridge/internal/shared/config"
	sharedErrors "github.com/reshetovitsme/tg-wp-bridge/internal/shared/errors"
)

const token = "123:TEST"

func newTelegramServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/bot"+token+"/getFile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch param(r, "file_id") {
		case "known":
			fmt.Fprint(w, `{"ok":true,"result":{"file_id":"known","file_unique_id":"u","file_size":4,"file_path":"photos/file_1.jpg"}}`)
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"ok":false,"error_code":500,"description":"Internal Server Error"}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: invalid file_id"}`)
		}
	})
	mux.HandleFunc("/file/bot"+token+"/photos/file_1.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("JPEG"))
	})
	mux.HandleFunc("/bot"+token+"/setWebhook", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://bridge.example/webhook/s3cret", param(r, "url"))
		fmt.Fprint(w, `{"ok":true,"result":true,"description":"Webhook was set"}`)
	})
	mux.HandleFunc("/bot"+token+"/getWebhookInfo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":true,"result":{"url":"https://bridge.example/webhook/s3cret","has_custom_certificate":false,"pending_update_count":3}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// param reads a Bot API parameter whether it was sent as a form or JSON.
func param(r *http.Request, key string) string {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return ""
		}
		return fmt.Sprint(body[key])
	}
	_ = r.ParseMultipartForm(1 << 20)
	return r.FormValue(key)
}

func newClient(srv *httptest.Server) *Client {
	return NewClient(&config.Config{
		TelegramBotToken:      token,
		TelegramAPIURL:        srv.URL,
		PublicBaseURL:         "https://bridge.example",
		TelegramWebhookSecret: "s3cret",
	})
}

func TestResolveAndDownload(t *testing.T) {
	srv := newTelegramServer(t)
	client := newClient(srv)
	ctx := context.Background()

	fileURL, err := client.ResolveFetchURL(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/file/bot"+token+"/photos/file_1.jpg", fileURL)

	data, err := client.Download(ctx, fileURL)
	require.NoError(t, err)
	assert.Equal(t, []byte("JPEG"), data)
}

func TestResolveUnknownFileIsAbsent(t *testing.T) {
	client := newClient(newTelegramServer(t))

	fileURL, err := client.ResolveFetchURL(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, fileURL)
}

func TestResolveTransportErrorPropagates(t *testing.T) {
	client := newClient(newTelegramServer(t))

	_, err := client.ResolveFetchURL(context.Background(), "broken")
	assert.Error(t, err)
}

func TestDownloadErrorStatus(t *testing.T) {
	srv := newTelegramServer(t)
	client := newClient(srv)

	_, err := client.Download(context.Background(), srv.URL+"/file/bot"+token+"/missing.jpg")
	require.Error(t, err)
	assert.ErrorContains(t, err, "404")
}

func TestWebhook(t *testing.T) {
	client := newClient(newTelegramServer(t))
	ctx := context.Background()

	webhookURL, err := client.SetWebhook(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://bridge.example/webhook/s3cret", webhookURL)

	info, err := client.WebhookInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://bridge.example/webhook/s3cret", info.URL)
	assert.EqualValues(t, 3, info.PendingUpdateCount)
}

func TestMissingSettings(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(&config.Config{}).ResolveFetchURL(ctx, "x")
	assert.ErrorIs(t, err, sharedErrors.ErrMissingBotToken)

	srv := newTelegramServer(t)
	client := NewClient(&config.Config{TelegramBotToken: token, TelegramAPIURL: srv.URL, PublicBaseURL: "https://bridge.example"})
	_, err = client.SetWebhook(ctx)
	assert.ErrorIs(t, err, sharedErrors.ErrMissingWebhookSecret)

	client = NewClient(&config.Config{TelegramBotToken: token, TelegramAPIURL: srv.URL})
	_, err = client.SetWebhook(ctx)
	assert.ErrorIs(t, err, sharedErrors.ErrMissingPublicBaseURL)
	assert.False(t, strings.Contains(err.Error(), token))
}
