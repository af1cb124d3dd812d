package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Owen-Rose/chefs-suite/framework/container"
)

func TestWithContainer_RoundTrip(t *testing.T) {
	c := container.New()
	ctx := container.WithContainer(context.Background(), c)

	got, ok := container.FromContext(ctx)
	if !ok || got != c {
		t.Error("FromContext should return the stored container")
	}
}

func TestFromContext_Empty(t *testing.T) {
	if _, ok := container.FromContext(context.Background()); ok {
		t.Error("FromContext on a bare context should report false")
	}
}

func TestRequestScope_InjectsChildPerRequest(t *testing.T) {
	root := container.New()
	root.Instance("cfg", "shared")

	var first, second *container.Container
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := container.MustFromContext(r.Context())
		if first == nil {
			first = scope
		} else {
			second = scope
		}
		if got := container.MustResolve[string](scope, "cfg"); got != "shared" {
			t.Errorf("cfg through scope: got %q, want 'shared'", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := container.RequestScope(root)(handler)
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d", i, rr.Code)
		}
	}

	if first == nil || second == nil || first == second {
		t.Error("each request should get its own child container")
	}
	if first.Parent() != root {
		t.Error("request scope should be a child of the root container")
	}
}

func TestRequestScope_OverridesDoNotLeakToRoot(t *testing.T) {
	root := container.New()
	root.Instance("mailer", "smtp")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := container.MustFromContext(r.Context())
		scope.Instance("mailer", "fake")
		if got := container.MustResolve[string](scope, "mailer"); got != "fake" {
			t.Errorf("scope mailer: got %q, want 'fake'", got)
		}
	})

	srv := container.RequestScope(root)(handler)
	srv.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := container.MustResolve[string](root, "mailer"); got != "smtp" {
		t.Errorf("root mailer after request: got %q, want 'smtp'", got)
	}
}
