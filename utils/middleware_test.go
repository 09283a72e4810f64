package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"
)

func TestStaticTokenAuthorizer(t *testing.T) {
	auth := NewStaticTokenAuthorizer("secret-token")

	if auth.Authorize("") {
		t.Fatal("empty token must not authorize")
	}
	if auth.Authorize("wrong") {
		t.Fatal("wrong token must not authorize")
	}
	if !auth.Authorize("secret-token") {
		t.Fatal("exact token must authorize")
	}
}

func TestAdminAuthMiddleware(t *testing.T) {
	app := iris.New()
	admin := app.Party("/admin", AdminAuthMiddleware(NewStaticTokenAuthorizer("secret-token")))
	admin.Get("/ping", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"success": true})
	})
	if err := app.Build(); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		token  string
		expect int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"wrong token", "nope", http.StatusUnauthorized},
		{"correct token", "secret-token", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if tc.token != "" {
			req.Header.Set("X-Admin-Token", tc.token)
		}
		resp := httptest.NewRecorder()
		app.ServeHTTP(resp, req)
		if resp.Code != tc.expect {
			t.Fatalf("%s: got %d, want %d", tc.name, resp.Code, tc.expect)
		}
	}
}
