package llm

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestExchangeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Token gh-secret" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != copilotAgent {
			t.Errorf("User-Agent = %q", got)
		}
		_, _ = w.Write([]byte(`{"token":"bearer-123","expires_at":1}`))
	}))
	defer srv.Close()

	token, err := exchangeToken(srv.Client(), srv.URL, "gh-secret")
	if err != nil {
		t.Fatalf("exchangeToken() error = %v", err)
	}
	if token != "bearer-123" {
		t.Errorf("token = %q, want bearer-123", token)
	}
}

func TestExchangeToken_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad credentials"}`},
		{"bad json", http.StatusOK, `not json`},
		{"empty token", http.StatusOK, `{"token":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := exchangeToken(srv.Client(), srv.URL, "gh"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadGitHubToken_Env(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")

	token, err := LoadGitHubToken()
	if err != nil {
		t.Fatalf("LoadGitHubToken() error = %v", err)
	}
	if token != "from-env" {
		t.Errorf("token = %q, want from-env", token)
	}
}

func TestLoadGitHubToken_HostsFile(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("XDG_CONFIG_HOME", configDir)

	dir := filepath.Join(configDir, "github-copilot")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	hosts := `{"github.com":{"user":"someone","oauth_token":"from-file"}}`
	if err := os.WriteFile(filepath.Join(dir, "hosts.json"), []byte(hosts), 0o600); err != nil {
		t.Fatal(err)
	}

	token, err := LoadGitHubToken()
	if err != nil {
		t.Fatalf("LoadGitHubToken() error = %v", err)
	}
	if token != "from-file" {
		t.Errorf("token = %q, want from-file", token)
	}
}

func TestLoadGitHubToken_Missing(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := LoadGitHubToken(); err == nil {
		t.Fatal("expected error when no token is available")
	}
}
