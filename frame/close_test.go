package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"CloseNormalClosure", CloseNormalClosure, 1000},
		{"CloseGoingAway", CloseGoingAway, 1001},
		{"CloseProtocolError", CloseProtocolError, 1002},
		{"CloseUnsupportedData", CloseUnsupportedData, 1003},
		{"CloseNoStatusReceived", CloseNoStatusReceived, 1005},
		{"CloseAbnormalClosure", CloseAbnormalClosure, 1006},
		{"CloseInvalidFramePayloadData", CloseInvalidFramePayloadData, 1007},
		{"ClosePolicyViolation", ClosePolicyViolation, 1008},
		{"CloseMessageTooBig", CloseMessageTooBig, 1009},
		{"CloseMandatoryExtension", CloseMandatoryExtension, 1010},
		{"CloseInternalServerErr", CloseInternalServerErr, 1011},
		{"CloseServiceRestart", CloseServiceRestart, 1012},
		{"CloseTryAgainLater", CloseTryAgainLater, 1013},
		{"CloseTLSHandshake", CloseTLSHandshake, 1015},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}

func TestCloseCodeText(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{CloseNormalClosure, "1000 (normal)"},
		{CloseProtocolError, "1002 (protocol error)"},
		{CloseInvalidFramePayloadData, "1007 (invalid payload)"},
		{CloseMessageTooBig, "1009 (message too big)"},
		{CloseTLSHandshake, "1015 (TLS handshake)"},
		{4000, "4000"},
		{4999, "4999"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, CloseCodeText(tt.code))
		})
	}
}

func TestIsValidCloseCode(t *testing.T) {
	tests := []struct {
		code     int
		expected bool
	}{
		{0, false},
		{999, false},
		{CloseNormalClosure, true},
		{CloseGoingAway, true},
		{CloseProtocolError, true},
		{CloseUnsupportedData, true},
		{1004, false},
		{CloseNoStatusReceived, false},
		{CloseAbnormalClosure, false},
		{CloseInvalidFramePayloadData, true},
		{ClosePolicyViolation, true},
		{CloseMessageTooBig, true},
		{CloseMandatoryExtension, true},
		{CloseInternalServerErr, true},
		{CloseServiceRestart, false},
		{CloseTLSHandshake, false},
		{2999, false},
		{3000, true},
		{3999, true},
		{4000, true},
		{4999, true},
		{5000, false},
		{65535, false},
	}

	for _, tt := range tests {
		t.Run(CloseCodeText(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCloseCode(tt.code))
		})
	}
}

func TestFormatCloseMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		text     string
		expected []byte
	}{
		{
			name:     "Normal closure with text",
			code:     CloseNormalClosure,
			text:     "goodbye",
			expected: []byte{0x03, 0xe8, 'g', 'o', 'o', 'd', 'b', 'y', 'e'},
		},
		{
			name:     "Normal closure without text",
			code:     CloseNormalClosure,
			text:     "",
			expected: []byte{0x03, 0xe8},
		},
		{
			name:     "No status received returns empty",
			code:     CloseNoStatusReceived,
			text:     "ignored",
			expected: []byte{},
		},
		{
			name:     "Going away",
			code:     CloseGoingAway,
			text:     "bye",
			expected: []byte{0x03, 0xe9, 'b', 'y', 'e'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCloseMessage(tt.code, tt.text))
		})
	}
}

func TestParseCloseMessage(t *testing.T) {
	t.Run("Empty body", func(t *testing.T) {
		code, text, err := ParseCloseMessage(nil)
		require.NoError(t, err)
		assert.Equal(t, CloseNoStatusReceived, code)
		assert.Empty(t, text)
	})

	t.Run("Code with reason", func(t *testing.T) {
		code, text, err := ParseCloseMessage(FormatCloseMessage(CloseGoingAway, "server restart"))
		require.NoError(t, err)
		assert.Equal(t, CloseGoingAway, code)
		assert.Equal(t, "server restart", text)
	})

	t.Run("Private code", func(t *testing.T) {
		code, _, err := ParseCloseMessage([]byte{0x0f, 0xa0})
		require.NoError(t, err)
		assert.Equal(t, 4000, code)
	})

	tests := []struct {
		name        string
		payload     []byte
		expectedErr error
	}{
		{"One byte body", []byte{0x03}, ErrInvalidClosePayload},
		{"Reserved code 1005", []byte{0x03, 0xed}, ErrInvalidCloseCode},
		{"Code below 1000", []byte{0x00, 0x01}, ErrInvalidCloseCode},
		{"Invalid UTF-8 reason", []byte{0x03, 0xe8, 0xc0, 0x80}, ErrInvalidUTF8},
		{"Truncated UTF-8 reason", []byte{0x03, 0xe8, 0xe2, 0x82}, ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCloseMessage(tt.payload)
			assert.ErrorIs(t, err, tt.expectedErr)

			code, ok := CloseCode(err)
			assert.True(t, ok)
			assert.Equal(t, CloseProtocolError, code)
		})
	}
}
