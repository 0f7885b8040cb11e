package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"resume-builder/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "exports/d1/a.html", want: "exports/d1/a.html"},
		{name: "simple prefix", prefix: "root", key: "exports/d1/a.html", want: "root/exports/d1/a.html"},
		{name: "prefix trailing slash", prefix: "root/", key: "exports/d1/a.html", want: "root/exports/d1/a.html"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/exports/d1/a.html", want: "root/exports/d1/a.html"},
		{name: "nested prefix", prefix: "root/sub", key: "exports/d1/a.html", want: "root/sub/exports/d1/a.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

func TestPutInputEncryption(t *testing.T) {
	aes := (&Store{bucket: "b"}).putInput("k", "")
	if aes.ServerSideEncryption != s3types.ServerSideEncryptionAes256 {
		t.Fatalf("expected AES256, got %q", aes.ServerSideEncryption)
	}
	if *aes.ContentType != "application/octet-stream" {
		t.Fatalf("unexpected default content type %q", *aes.ContentType)
	}

	kms := (&Store{bucket: "b", kmsKeyID: "key-1"}).putInput("k", "text/html; charset=utf-8")
	if kms.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms || *kms.SSEKMSKeyId != "key-1" {
		t.Fatalf("expected kms encryption, got %+v", kms)
	}
}

func TestInvalidKeyRejectedBeforeNetwork(t *testing.T) {
	s := &Store{bucket: "b"}
	if _, err := s.Put(context.Background(), "../x", "text/html", strings.NewReader("x")); !errors.Is(err, object.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := s.Open(context.Background(), "/x"); !errors.Is(err, object.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestCountingReader(t *testing.T) {
	c := &countingReader{r: strings.NewReader("hello")}
	if _, err := io.ReadAll(c); err != nil {
		t.Fatalf("read: %v", err)
	}
	if c.n != 5 {
		t.Fatalf("expected 5 bytes, got %d", c.n)
	}
}
