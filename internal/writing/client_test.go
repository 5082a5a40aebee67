package writing

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

// fakeProvider scripts per-model outcomes and records every call.
type fakeProvider struct {
	name   string
	models []string
	fail   map[string]error
	resp   string
	calls  []string
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Models() []string { return f.models }

func (f *fakeProvider) Evaluate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err := f.fail[model]; err != nil {
		return "", err
	}
	return f.resp, nil
}

func providerErr(name, model string, status int) error {
	return &ProviderError{Provider: name, Model: model, StatusCode: status, Err: errors.New("scripted failure")}
}

func TestClientNoProviders(t *testing.T) {
	c := NewClient(nil, 0)
	if c.Configured() {
		t.Error("empty client should not report configured")
	}
	_, _, err := c.Evaluate(context.Background(), "sys", "user")
	if !errors.Is(err, ErrNoProvider) {
		t.Errorf("err = %v, want ErrNoProvider", err)
	}
}

func TestClientFallsThroughModels(t *testing.T) {
	p := &fakeProvider{
		name:   "primary",
		models: []string{"big", "small"},
		fail:   map[string]error{"big": providerErr("primary", "big", http.StatusTooManyRequests)},
		resp:   "judged",
	}
	c := NewClient([]Provider{p}, 0)

	raw, name, err := c.Evaluate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "judged" || name != "primary" {
		t.Errorf("got (%q, %q), want (judged, primary)", raw, name)
	}
	if want := []string{"big", "small"}; !reflect.DeepEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
}

func TestClientAbandonsProviderOnBadCredentials(t *testing.T) {
	p1 := &fakeProvider{
		name:   "primary",
		models: []string{"a", "b"},
		fail: map[string]error{
			"a": providerErr("primary", "a", http.StatusUnauthorized),
			"b": providerErr("primary", "b", http.StatusUnauthorized),
		},
	}
	p2 := &fakeProvider{name: "secondary", models: []string{"m"}, resp: "judged"}
	c := NewClient([]Provider{p1, p2}, 0)

	raw, name, err := c.Evaluate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "judged" || name != "secondary" {
		t.Errorf("got (%q, %q), want (judged, secondary)", raw, name)
	}
	// A 401 fails every model of that provider, so "b" is never tried.
	if len(p1.calls) != 1 {
		t.Errorf("primary calls = %v, want just the first model", p1.calls)
	}
}

func TestClientAllProvidersFail(t *testing.T) {
	p := &fakeProvider{
		name:   "primary",
		models: []string{"a"},
		fail:   map[string]error{"a": providerErr("primary", "a", http.StatusNotFound)},
	}
	c := NewClient([]Provider{p}, 0)

	_, _, err := c.Evaluate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected an error when every attempt fails")
	}
	if !strings.Contains(err.Error(), "all evaluation providers failed") {
		t.Errorf("err = %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Error("expected the last provider error to be wrapped")
	}
}

func TestClientStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p1 := &fakeProvider{
		name:   "primary",
		models: []string{"a"},
		fail:   map[string]error{"a": providerErr("primary", "a", 0)},
	}
	p2 := &fakeProvider{name: "secondary", models: []string{"m"}, resp: "judged"}
	c := NewClient([]Provider{p1, p2}, 0)

	_, _, err := c.Evaluate(ctx, "sys", "user")
	if err == nil || !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(p2.calls) != 0 {
		t.Error("secondary provider should not be tried after cancellation")
	}
}
