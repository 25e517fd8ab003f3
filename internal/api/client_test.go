package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ivaneres/coffee/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return client, srv
}

func TestNewRejectsBadURL(t *testing.T) {
	tests := []string{
		"localhost:8000",
		"ftp://example.com",
		"",
	}
	for _, raw := range tests {
		if _, err := New(raw); err == nil {
			t.Errorf("New(%q) succeeded, want error", raw)
		}
	}
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Bean{})
	}), WithTokenSource(TokenFunc(func() string { return "tok-123" })))

	if _, err := client.ListBeans(context.Background()); err != nil {
		t.Fatalf("ListBeans() error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Bean{})
	}), WithTokenSource(TokenFunc(func() string { return "" })))

	if _, err := client.ListBeans(context.Background()); err != nil {
		t.Fatalf("ListBeans() error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestCollectionPathsKeepTrailingSlash(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode([]EspressoRecord{})
	}))

	ctx := context.Background()
	_, _ = client.ListBeans(ctx)
	_, _ = client.ListRecords(ctx, nil)

	want := []string{"/api/beans/", "/api/records/"}
	for i, p := range want {
		if i >= len(paths) || paths[i] != p {
			t.Errorf("request %d path = %q, want %q", i, paths[i], p)
		}
	}
}

func TestListRecordsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]EspressoRecord{})
	}))

	_, err := client.ListRecords(context.Background(), &RecordQuery{
		BeanID:  7,
		Machine: "Linea Mini",
	})
	if err != nil {
		t.Fatalf("ListRecords() error: %v", err)
	}

	if got := gotQuery["bean_id"]; len(got) != 1 || got[0] != "7" {
		t.Errorf("bean_id = %v, want [7]", got)
	}
	if got := gotQuery["machine"]; len(got) != 1 || got[0] != "Linea Mini" {
		t.Errorf("machine = %v, want [Linea Mini]", got)
	}
	if _, ok := gotQuery["grinder"]; ok {
		t.Error("grinder param present, want omitted")
	}
	if _, ok := gotQuery["bean_variety"]; ok {
		t.Error("bean_variety param present, want omitted")
	}
}

func TestNilQuerySendsNoParams(t *testing.T) {
	var rawQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]EspressoRecord{})
	}))

	if _, err := client.ListRecords(context.Background(), nil); err != nil {
		t.Fatalf("ListRecords() error: %v", err)
	}
	if rawQuery != "" {
		t.Errorf("RawQuery = %q, want empty", rawQuery)
	}
}

func TestNonSuccessReturnsAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	}))

	_, err := client.CurrentUser(context.Background())
	if err == nil {
		t.Fatal("CurrentUser() succeeded, want error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *api.Error", err)
	}
	if !apiErr.IsAuthFailure() {
		t.Errorf("IsAuthFailure() = false, want true (status %d)", apiErr.StatusCode)
	}
	if got := apiErr.Error(); got != "Could not validate credentials" {
		t.Errorf("Error() = %q, want %q", got, "Could not validate credentials")
	}
}

func TestTransportFailureWrapsServerUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // connection refused from here on

	client, err := New(url)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = client.ListBeans(context.Background())
	if err == nil {
		t.Fatal("ListBeans() succeeded against closed server")
	}
	if !errors.Is(err, errors.ErrServerUnavailable) {
		t.Errorf("error does not wrap ErrServerUnavailable: %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q, want /api/auth/login", r.URL.Path)
		}
		var creds LoginCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if creds.Username != "alex" || creds.Password != "hunter2" {
			t.Errorf("credentials = %+v", creds)
		}
		_ = json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok", TokenType: "bearer"})
	}))

	token, err := client.Login(context.Background(), LoginCredentials{Username: "alex", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if token.AccessToken != "tok" {
		t.Errorf("AccessToken = %q, want %q", token.AccessToken, "tok")
	}
}

func TestCreateRecordSendsRatings(t *testing.T) {
	// Ratings are always present in a built payload; this test pins the wire
	// shape rather than the form logic.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		for _, field := range []string{"rating", "sourness", "bitterness", "sweetness"} {
			if _, ok := body[field]; !ok {
				t.Errorf("payload missing %q", field)
			}
		}
		if _, ok := body["dose"]; ok {
			t.Error("payload carries dose, want omitted")
		}
		_ = json.NewEncoder(w).Encode(EspressoRecord{ID: 1, BeanID: 3})
	}))

	rating := 5
	_, err := client.CreateRecord(context.Background(), RecordCreate{
		BeanID:     3,
		Machine:    "Gaggia Classic",
		Grinder:    "Niche Zero",
		Rating:     &rating,
		Sourness:   &rating,
		Bitterness: &rating,
		Sweetness:  &rating,
	})
	if err != nil {
		t.Fatalf("CreateRecord() error: %v", err)
	}
}

func TestUpdateRecordNeverSendsBeanID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/records/9" {
			t.Errorf("path = %q, want /api/records/9", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, ok := body["bean_id"]; ok {
			t.Error("update payload carries bean_id")
		}
		_ = json.NewEncoder(w).Encode(EspressoRecord{ID: 9, BeanID: 3})
	}))

	machine := "Gaggia Classic"
	grinder := "Niche Zero"
	_, err := client.UpdateRecord(context.Background(), 9, RecordUpdate{
		Machine: &machine,
		Grinder: &grinder,
	})
	if err != nil {
		t.Fatalf("UpdateRecord() error: %v", err)
	}
}

func TestUpdateSettingsSendsEmptyStringToClear(t *testing.T) {
	// The server's settings update is partial: omitted fields keep their
	// stored value. A cleared default therefore has to travel as "".
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		machine, ok := body["default_machine"]
		if !ok {
			t.Error("payload missing default_machine, cleared default would survive")
		} else if machine != "" {
			t.Errorf("default_machine = %v, want empty string", machine)
		}
		if grinder, ok := body["default_grinder"]; !ok || grinder != "Niche Zero" {
			t.Errorf("default_grinder = %v (present=%t), want Niche Zero", grinder, ok)
		}
		_ = json.NewEncoder(w).Encode(UserSettings{ID: 1, UserID: 1})
	}))

	machine := ""
	grinder := "Niche Zero"
	_, err := client.UpdateSettings(context.Background(), UserSettingsUpdate{
		DefaultMachine: &machine,
		DefaultGrinder: &grinder,
	})
	if err != nil {
		t.Fatalf("UpdateSettings() error: %v", err)
	}
}

func TestDeleteBean(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteBean(context.Background(), 4); err != nil {
		t.Fatalf("DeleteBean() error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/beans/4" {
		t.Errorf("request = %s %s, want DELETE /api/beans/4", gotMethod, gotPath)
	}
}
