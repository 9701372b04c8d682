package services

import (
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
)

func TestNewS3Service(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	service, err := NewS3Service()

	// Should fail without proper AWS credentials
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestGeneratePresignedURL(t *testing.T) {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String("us-east-1"),
		Credentials: credentials.NewStaticCredentials("test", "test", ""),
	}))
	service := &S3Service{
		s3Client: s3.New(sess),
		bucket:   "test-bucket",
		region:   "us-east-1",
	}

	// Presigning is local; no request is sent.
	url, err := service.GeneratePresignedURL("resumes/1/resume-v1.docx")

	assert.NoError(t, err)
	assert.True(t, strings.Contains(url, "test-bucket"))
	assert.True(t, strings.Contains(url, "resume-v1.docx"))
}

func TestS3ServiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		region  string
		isValid bool
	}{
		{
			name:    "valid configuration",
			bucket:  "my-bucket",
			region:  "us-east-1",
			isValid: true,
		},
		{
			name:    "empty bucket",
			bucket:  "",
			region:  "us-east-1",
			isValid: false,
		},
		{
			name:    "empty region",
			bucket:  "my-bucket",
			region:  "",
			isValid: false,
		},
		{
			name:    "both empty",
			bucket:  "",
			region:  "",
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &S3Service{
				bucket: tt.bucket,
				region: tt.region,
			}

			err := service.validate()
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
