package awscred

import (
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/sts"
)

// FromAccessKey converts an iam.AccessKey to a Credential.
func FromAccessKey(key iam.AccessKey) (Credential, error) {
	if key.AccessKeyId == nil || key.SecretAccessKey == nil {
		return Credential{}, ErrIncompleteCredential
	}
	return Credential{
		AccessKeyID:     *key.AccessKeyId,
		SecretAccessKey: *key.SecretAccessKey,
	}, nil
}

// FromSTSCredentials converts temporary sts.Credentials to a Credential.
func FromSTSCredentials(creds sts.Credentials) (Credential, error) {
	if creds.AccessKeyId == nil || creds.SecretAccessKey == nil {
		return Credential{}, ErrIncompleteCredential
	}
	cred := Credential{
		AccessKeyID:     *creds.AccessKeyId,
		SecretAccessKey: *creds.SecretAccessKey,
	}
	if creds.SessionToken != nil {
		cred.SessionToken = *creds.SessionToken
	}
	return cred, nil
}
