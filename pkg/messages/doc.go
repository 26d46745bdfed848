// Package messages defines the catalog of form-level status copy: the
// working, success, validation-summary and failure messages shown around
// submissions.
//
// The built-in Default catalog ships English text. Deployments that need
// different wording overlay a YAML file on top of it:
//
//	catalog, err := messages.LoadFile("messages.yaml")
//	if err != nil {
//	    // defaults are returned alongside the error
//	}
//
// A catalog file lists only the keys it changes:
//
//	success: "Welcome aboard!"
//	timeout: "Still waking up, give it another go."
//
// This is configurable copy, not localization: one catalog is active at a
// time and no locale negotiation takes place.
package messages
