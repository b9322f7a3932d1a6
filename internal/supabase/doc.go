// Package supabase is a minimal read-only client for a Supabase project's
// PostgREST endpoint.
//
// # Overview
//
// The dashboard reads two tables and never writes. The client therefore
// exposes only two operations:
//
//   - SelectAll: GET /rest/v1/<table>?select=*
//   - SelectOrdered: GET /rest/v1/<table>?select=*&order=<column>.asc
//
// Both decode the JSON array response into a caller-supplied slice pointer.
//
// # Authentication
//
// Supabase expects the project key twice: as the apikey header and as a
// bearer token. The key is whatever anon key the operator configured; row
// level security on the remote side decides what it can see.
//
// # Error Handling
//
// Every failure wraps ErrFetch:
//
//   - request construction and transport errors ("execute request: ...")
//   - HTTP status >= 400, decoded into *APIError when the body is a
//     PostgREST error payload
//   - JSON decode failures ("decode response: ...")
//
// Callers that only care whether the fetch worked check
// errors.Is(err, supabase.ErrFetch); callers that want the remote detail use
// errors.As with *APIError.
//
// # Construction
//
// NewClient never contacts the network. A client built from placeholder
// values constructs fine and fails at request time, which lets the UI start
// and fall back to its default displays.
//
//	client, err := supabase.NewClient(cfg.URL, cfg.AnonKey, supabase.WithTimeout(cfg.RequestTimeout))
//	if err != nil {
//		return err
//	}
//	var rows []catalog.Character
//	err = client.SelectAll(ctx, "characters", &rows)
package supabase
