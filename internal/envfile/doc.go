// Package envfile parses KEY=VALUE .env files and builds layered lookup
// functions over them, so native SDK resolution can be driven by a checked-in
// file as well as by the process environment. It also redacts sensitive values
// for the doctor's environment trace.
package envfile
