package awscred

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// AWSCredentials owns a parsed credentials file and remembers where it came
// from so Write can put it back. Nothing is persisted implicitly; callers
// must invoke Write or WriteTo. A single instance is not safe for concurrent
// use without external locking.
type AWSCredentials struct {
	path  string
	store *Store
}

// New returns an empty AWSCredentials that will write to path.
func New(path string) *AWSCredentials {
	return &AWSCredentials{
		path:  path,
		store: NewStore(),
	}
}

// Load reads the credentials file from the default location (~/.aws/credentials).
func Load() (*AWSCredentials, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the credentials file at path.
func LoadFrom(path string) (*AWSCredentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	store, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	return &AWSCredentials{
		path:  path,
		store: store,
	}, nil
}

// DefaultPath resolves the credentials file location: AWS_SHARED_CREDENTIALS_FILE
// when set, otherwise ~/.aws/credentials.
func DefaultPath() (string, error) {
	if path, ok := os.LookupEnv("AWS_SHARED_CREDENTIALS_FILE"); ok && path != "" {
		return path, nil
	}
	hd, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(hd, ".aws", "credentials"), nil
}

// Path returns the file path Write will use.
func (c *AWSCredentials) Path() string {
	return c.path
}

// Store returns the underlying profile store.
func (c *AWSCredentials) Store() *Store {
	return c.store
}

// WithProfile returns a handle to the named profile, creating an empty
// profile if it does not exist. Repeated calls address the same profile. A
// name the file format cannot represent is not created; the returned handle
// carries ErrInvalidValue and its mutations are dropped.
func (c *AWSCredentials) WithProfile(name string) *ProfileHandle {
	if !validProfileName(name) {
		return &ProfileHandle{err: ErrInvalidValue}
	}
	return &ProfileHandle{profile: c.store.Profile(name)}
}

// GetProfile returns the named profile's credential and whether the profile exists.
func (c *AWSCredentials) GetProfile(name string) (Credential, bool) {
	p, ok := c.store.Lookup(name)
	if !ok {
		return Credential{}, false
	}
	cred, err := (&ProfileHandle{profile: p}).Credential()
	if err != nil {
		return Credential{}, false
	}
	return cred, true
}

// SetProfile sets the named profile's recognized keys from cred, creating
// the profile if needed. An empty session token removes the key.
func (c *AWSCredentials) SetProfile(name string, cred Credential) {
	h := c.WithProfile(name).
		SetAccessKeyID(cred.AccessKeyID).
		SetSecretAccessKey(cred.SecretAccessKey)
	if cred.SessionToken != "" {
		h.SetSessionToken(cred.SessionToken)
	} else {
		h.ClearSessionToken()
	}
}

// Exists reports whether the named profile exists.
func (c *AWSCredentials) Exists(name string) bool {
	_, ok := c.store.Lookup(name)
	return ok
}

// RemoveProfile deletes the named profile, reporting whether it existed.
func (c *AWSCredentials) RemoveProfile(name string) bool {
	return c.store.Remove(name)
}

// Clone returns a deep copy, useful as a snapshot before mutating since
// setters have no undo.
func (c *AWSCredentials) Clone() *AWSCredentials {
	return &AWSCredentials{
		path:  c.path,
		store: c.store.Clone(),
	}
}

// Write serializes the store back to the path it was loaded from or
// constructed with. Fails with ErrNoPath if no path is known.
func (c *AWSCredentials) Write() error {
	if c.path == "" {
		return ErrNoPath
	}
	return c.WriteTo(c.path)
}

// WriteTo serializes the store to an explicit path, independent of the load
// path. The file is truncated and written with 0600 permissions, the mode
// the AWS CLI uses for this file. The write is not atomic; a crash mid-write
// can leave a partial file.
func (c *AWSCredentials) WriteTo(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := os.WriteFile(path, []byte(c.store.String()), 0o600); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	return nil
}
