// Package google provides service account authentication for Google APIs.
//
// Credentials come from a service account key JSON file as downloaded from
// the Google Cloud console. The CredentialsProvider interface allows different
// credential sources to be plugged in, keeping Google API clients decoupled
// from how keys are loaded and cached.
package google
