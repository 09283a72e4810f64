package routes

import (
	"time"

	"github.com/kataras/iris/v12"
)

// Health - GET /health
func Health(ctx iris.Context) {
	ctx.JSON(iris.Map{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
}

// RegistrationLink - GET /api/registration-link
func RegistrationLink(ctx iris.Context) {
	ctx.JSON(iris.Map{
		"success": true,
		"message": "Use this link to register a new Jalwa account",
		"data": iris.Map{
			"registrationUrl": "https://www.jalwa.vip/#/register?invitationCode=327361287589",
			"telegramSupport": "@Bongjayanta2",
		},
	})
}

// Index - GET /
// Minimal endpoint listing so hitting the API root in a browser shows
// something useful. The real site is served by the SPA host.
func Index(ctx iris.Context) {
	ctx.HTML(`<html>
  <head><title>Jalwa API Server</title></head>
  <body>
    <h1>Jalwa API Server</h1>
    <p>The API server is running. Available endpoints:</p>
    <ul>
      <li>POST /api/verify-account</li>
      <li>GET /api/gift-code</li>
      <li>GET /api/registration-link</li>
      <li>GET /api/admin/account-verifications</li>
      <li>GET /api/admin/account-verifications/status/{status}</li>
      <li>POST /api/admin/account-verifications/{id}</li>
      <li>POST /api/admin/account-verification/{id}/approve</li>
      <li>POST /api/admin/account-verification/{id}/reject</li>
      <li>POST /api/admin/gift-code</li>
    </ul>
  </body>
</html>`)
}
