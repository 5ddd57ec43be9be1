package app

import (
	"context"
	"fmt"
)

// Run dispatches a command line. The first argument names the command; the
// rest are its flags and arguments.
func (app *Application) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		app.printUsage()
		return nil
	}

	command, rest := args[0], args[1:]

	switch command {
	case "login":
		return app.runLogin(ctx, rest)
	case "logout":
		return app.runLogout(ctx)
	case "register":
		return app.runRegister(ctx, rest)
	case "status":
		return app.runStatus(ctx)
	case "admin":
		return app.runAdminMode(ctx, rest)
	case "change-password":
		return app.runChangePassword(ctx, rest)
	case "cycle-totp-secret":
		return app.runCycleTOTPSecret(ctx, rest)
	case "settings":
		return app.runSettings(ctx, rest)
	case "cycle-cookie-secret":
		return app.runCycleCookieSecret(ctx)
	case "items":
		return app.runItems(ctx, rest)
	case "users":
		return app.runUsers(ctx, rest)
	case "webhooks":
		return app.runWebhooks(ctx, rest)
	case "accounts":
		return app.runAccounts(ctx, rest)
	case "api-clients":
		return app.runAPIClients(ctx, rest)
	case "oauth2-clients":
		return app.runOAuth2Clients(ctx, rest)
	case "audit":
		return app.runAuditLog(ctx, rest)
	case "help", "-h", "--help":
		app.printUsage()
		return nil
	default:
		app.printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (app *Application) printUsage() {
	fmt.Fprintf(app.out, `%s admin console

Usage:
  todo-admin <command> [flags]

Session:
  register        create a user account and verify its 2FA secret
  login           authenticate and save the session cookie
  logout          end the session
  status          show the current authentication standing
  admin on|off    toggle the advisory admin flag on list requests
  change-password change the authenticated user's password
  cycle-totp-secret rotate the 2FA secret
  settings        show or change display language and theme

Entities:
  items           list|get|create|update|archive|search|audit
  users           list|get|search|archive|ban|audit
  webhooks        list|get|create|update|archive|audit
  accounts        list|get|create|update|archive|default|audit
  api-clients     list|get|create|archive|audit
  oauth2-clients  list|get|create|archive|audit

Admin:
  audit               list|get service-wide audit log entries
  cycle-cookie-secret rotate the cookie signing secret

List flags: -page -limit -created-before -created-after -updated-before
-updated-after -include-archived -sort
`, app.t.Console.ServiceName)
}
