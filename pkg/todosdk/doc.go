// Package todosdk is a client for the todo service HTTP API.
//
// The client authenticates with a session cookie obtained via Login (stored in
// an internal cookie jar) or with a bearer token supplied through
// WithBearerToken. Every operation takes a context.Context and honors its
// cancellation: an in-flight request is abandoned as soon as the caller's
// context is done.
//
// Basic usage:
//
//	client, err := todosdk.NewClient("https://todo.example.com")
//	if err != nil {
//		...
//	}
//
//	cookie, err := client.Login(ctx, &types.UserLoginInput{
//		Username:  "username",
//		Password:  "password",
//		TOTPToken: "123456",
//	})
//
//	items, err := client.GetItems(ctx, nil)
//
// List operations accept an optional *queryfilter.QueryFilter; nil requests
// the first page with default settings. When admin mode is enabled via
// SetAdminMode, list requests carry an advisory admin=true parameter. The
// server independently verifies elevation on every request, so the flag only
// widens results for callers that actually hold admin permissions.
//
// Errors from the service are returned as *APIError values. Responses with
// status 401 and 404 additionally match ErrUnauthorized and ErrNotFound via
// errors.Is.
package todosdk
