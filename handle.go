package awscred

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ProfileHandle mutates a single profile in its owning store. Setters return
// the handle so calls can be chained:
//
//	creds.WithProfile("default").
//		SetAccessKeyID("ACCESS_KEY").
//		SetSecretAccessKey("SECRET_KEY")
//
// Mutations apply to the store immediately; there is no staging step.
// Setters cannot both chain and return an error, so a rejected key or value
// records the first failure instead, readable through Err, and leaves the
// store untouched. Later calls in the chain still apply.
type ProfileHandle struct {
	profile *Profile
	err     error
}

// SetAccessKeyID sets the aws_access_key_id key.
func (h *ProfileHandle) SetAccessKeyID(value string) *ProfileHandle {
	return h.Set(keyAccessKeyID, value)
}

// SetSecretAccessKey sets the aws_secret_access_key key.
func (h *ProfileHandle) SetSecretAccessKey(value string) *ProfileHandle {
	return h.Set(keySecretAccessKey, value)
}

// SetSessionToken sets the aws_session_token key.
func (h *ProfileHandle) SetSessionToken(value string) *ProfileHandle {
	return h.Set(keySessionToken, value)
}

// ClearSessionToken removes the aws_session_token key.
func (h *ProfileHandle) ClearSessionToken() *ProfileHandle {
	return h.Remove(keySessionToken)
}

// Set assigns value to an arbitrary key, so profile fields AWS adds in the
// future can be written without library changes. A key or value the file
// format cannot represent records ErrInvalidValue and is not applied.
func (h *ProfileHandle) Set(key, value string) *ProfileHandle {
	if !validKey(key) || !validValue(value) {
		h.fail(ErrInvalidValue)
		return h
	}
	if h.profile != nil {
		h.profile.Set(key, value)
	}
	return h
}

// Remove deletes a key from the profile. Removing an absent key is a no-op.
func (h *ProfileHandle) Remove(key string) *ProfileHandle {
	if h.profile != nil {
		h.profile.Delete(key)
	}
	return h
}

// AccessKeyID returns the aws_access_key_id key and whether it is set.
func (h *ProfileHandle) AccessKeyID() (string, bool) {
	return h.Get(keyAccessKeyID)
}

// SecretAccessKey returns the aws_secret_access_key key and whether it is set.
func (h *ProfileHandle) SecretAccessKey() (string, bool) {
	return h.Get(keySecretAccessKey)
}

// SessionToken returns the aws_session_token key and whether it is set.
func (h *ProfileHandle) SessionToken() (string, bool) {
	return h.Get(keySessionToken)
}

// Get returns the value of an arbitrary key and whether it is set.
func (h *ProfileHandle) Get(key string) (string, bool) {
	if h.profile == nil {
		return "", false
	}
	return h.profile.Get(key)
}

// Credential decodes the profile's recognized keys into a Credential.
func (h *ProfileHandle) Credential() (Credential, error) {
	var cred Credential
	if h.profile == nil {
		return cred, h.err
	}
	settings := make(map[string]string, h.profile.Len())
	for _, k := range h.profile.Keys() {
		v, _ := h.profile.Get(k)
		settings[k] = v
	}
	if err := mapstructure.Decode(settings, &cred); err != nil {
		return Credential{}, err
	}
	return cred, nil
}

// Err returns the first error recorded by a rejected mutation, or nil.
func (h *ProfileHandle) Err() error {
	return h.err
}

func (h *ProfileHandle) fail(err error) {
	if h.err == nil {
		h.err = err
	}
}

func validKey(key string) bool {
	if strings.ContainsAny(key, "\x00\n\r=") {
		return false
	}
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '#', ';', '[':
		return false
	}
	return true
}

func validValue(value string) bool {
	return !strings.ContainsAny(value, "\x00\n\r")
}

func validProfileName(name string) bool {
	if name == "" || strings.ContainsAny(name, "\x00\n\r") {
		return false
	}
	// Surrounding whitespace would be trimmed away on re-parse.
	return name == strings.TrimSpace(name)
}
