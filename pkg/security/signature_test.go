package security_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/pkg/security"
)

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"conversation_id":"conv_1"}`)
	valid := security.Sign(payload, "s3cret")

	tests := []struct {
		name      string
		signature string
		secret    string
		want      bool
	}{
		{name: "valid", signature: valid, secret: "s3cret", want: true},
		{name: "valid with prefix", signature: "sha256=" + valid, secret: "s3cret", want: true},
		{name: "wrong secret", signature: valid, secret: "other", want: false},
		{name: "empty signature", signature: "", secret: "s3cret", want: false},
		{name: "no secret configured", signature: "", secret: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, security.VerifySignature(payload, tt.signature, tt.secret))
		})
	}
}
