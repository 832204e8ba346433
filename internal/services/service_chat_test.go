package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestClassify_UpstreamHints(t *testing.T) {
	svc := &ChatService{Logger: zap.NewNop()}

	t.Run("unsupported region gets the vpn hint", func(t *testing.T) {
		raw := []byte(`{"error":{"message":"region blocked","code":"unsupported_country_region_territory"}}`)

		err := svc.classify(raw, http.StatusForbidden)
		assert.Equal(t, "region blocked", err.Msg)
		assert.Equal(t, "use a VPN exit in a supported region (US/Europe)", err.Solution)
	})

	t.Run("unauthorized gets the key hint", func(t *testing.T) {
		raw := []byte(`{"error":{"message":"invalid api key","code":401}}`)

		err := svc.classify(raw, http.StatusUnauthorized)
		assert.Equal(t, "check the API key", err.Solution)
	})

	t.Run("unclassified failure carries no hint", func(t *testing.T) {
		raw := []byte(`{"error":{"message":"model overloaded"}}`)

		err := svc.classify(raw, http.StatusServiceUnavailable)
		assert.Equal(t, "model overloaded", err.Msg)
		assert.Empty(t, err.Solution)
	})

	t.Run("unparseable body falls back to a generic message", func(t *testing.T) {
		err := svc.classify([]byte("<html>gateway error</html>"), http.StatusBadGateway)
		assert.Equal(t, "completion API error", err.Msg)
		assert.Empty(t, err.Solution)
	})
}
