// Package config resolves the Supabase project the dashboard reads from.
//
// # Resolution Order
//
// Each value is taken from the last source that sets it:
//
//  1. Built-in placeholders (PlaceholderURL, PlaceholderKey)
//  2. The TOML file, ~/.config/deafcat/config.toml unless a path is given
//  3. Environment: SUPABASE_URL / SUPABASE_ANON_KEY, or the web build's
//     VITE_SUPABASE_URL / VITE_SUPABASE_ANON_KEY
//
// # TOML Format
//
//	supabase_url = "https://abcd.supabase.co"
//	supabase_anon_key = "eyJhbGciOi..."
//	request_timeout = "10s"   # optional, unset means no timeout
//
// # Missing Values
//
// A missing config file is not an error. A missing URL or key is not an error
// either: the placeholder is used, Configured reports false and Warnings
// carries a message for the caller to log. The client still gets built and
// its requests fail, which the views turn into their default displays.
//
// Load returns errors only for unreadable files, invalid TOML and invalid
// request_timeout values.
package config
