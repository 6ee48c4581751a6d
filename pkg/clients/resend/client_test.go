package resend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *clientImpl {
	return &clientImpl{
		apiKey:     "re_test",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestSendEmail(t *testing.T) {
	var got struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
	}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	id, err := testClient(srv.URL).SendEmail("jane@example.com", "Your guide", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)
	assert.Equal(t, "Bearer re_test", gotAuth)
	assert.Equal(t, FromAddress, got.From)
	assert.Equal(t, []string{"jane@example.com"}, got.To)
	assert.Equal(t, "Your guide", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTML)
}

func TestSendEmailNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SendEmail("not-an-email", "Your guide", "<p>hi</p>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid to address")
}
