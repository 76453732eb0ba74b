package awscred

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/iam"
	"github.com/aws/aws-sdk-go/service/sts"
)

func TestFromAccessKey(t *testing.T) {
	t.Run("valid access key", func(t *testing.T) {
		got, err := FromAccessKey(iam.AccessKey{
			AccessKeyId:     aws.String(accessKeyID),
			CreateDate:      aws.Time(time.Now()),
			SecretAccessKey: aws.String(secretAccessKey),
			Status:          aws.String("Active"),
			UserName:        aws.String("ValidUserName"),
		})

		assertNoError(t, err)
		assertCredential(t, got, Credential{
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
		})
	})
	t.Run("missing secret", func(t *testing.T) {
		_, err := FromAccessKey(iam.AccessKey{
			AccessKeyId: aws.String(accessKeyID),
		})

		assertErrorIs(t, err, ErrIncompleteCredential)
	})
}

func TestFromSTSCredentials(t *testing.T) {
	t.Run("temporary credentials", func(t *testing.T) {
		got, err := FromSTSCredentials(sts.Credentials{
			AccessKeyId:     aws.String(accessKeyID),
			SecretAccessKey: aws.String(secretAccessKey),
			SessionToken:    aws.String(sessionToken),
			Expiration:      aws.Time(time.Now().Add(time.Hour)),
		})

		assertNoError(t, err)
		assertCredential(t, got, Credential{
			AccessKeyID:     accessKeyID,
			SecretAccessKey: secretAccessKey,
			SessionToken:    sessionToken,
		})
	})
	t.Run("missing access key id", func(t *testing.T) {
		_, err := FromSTSCredentials(sts.Credentials{
			SecretAccessKey: aws.String(secretAccessKey),
		})

		assertErrorIs(t, err, ErrIncompleteCredential)
	})
}
