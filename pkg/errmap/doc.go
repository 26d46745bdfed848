// Package errmap translates failed submission results into display
// decisions: show errors under individual fields, show one form-level
// message, or fall back to generic failure copy.
//
// The server is not trusted to be consistent. Some failures arrive as
//
//	{"errors": {"email": "Email is already registered"}}
//
// others as
//
//	{"message": "Invalid email or password."}
//
// and some with empty or unparseable bodies. Map resolves every case to a
// single tagged Mapped value with a fixed priority: field errors beat a
// general message, and anything unrecognizable becomes KindFallback. The
// caller owns the fallback wording.
package errmap
