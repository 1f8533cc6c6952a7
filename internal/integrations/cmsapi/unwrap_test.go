package cmsapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnwrapErrorMessage_ServerMessages(t *testing.T) {
	body := []byte(`{"_server_messages":"[\"{\\\"message\\\": \\\"Hall is already booked\\\"}\"]"}`)
	require.Equal(t, "Hall is already booked", UnwrapErrorMessage(body))
}

func TestUnwrapErrorMessage_NestedObject(t *testing.T) {
	body := []byte(`{"message":{"message":"Session expired"}}`)
	require.Equal(t, "Session expired", UnwrapErrorMessage(body))
}

func TestUnwrapErrorMessage_DoubleEncodedString(t *testing.T) {
	body := []byte(`{"message":"{\"message\": \"Invalid academy\"}"}`)
	require.Equal(t, "Invalid academy", UnwrapErrorMessage(body))
}

func TestUnwrapErrorMessage_PlainString(t *testing.T) {
	body := []byte(`{"message":"Not permitted"}`)
	require.Equal(t, "Not permitted", UnwrapErrorMessage(body))
}

func TestUnwrapErrorMessage_ServerMessagesWinOverMessage(t *testing.T) {
	body := []byte(`{"_server_messages":"[\"{\\\"message\\\": \\\"From server\\\"}\"]","message":"fallback"}`)
	require.Equal(t, "From server", UnwrapErrorMessage(body))
}

func TestUnwrapErrorMessage_NothingUsable(t *testing.T) {
	require.Empty(t, UnwrapErrorMessage([]byte(`{}`)))
	require.Empty(t, UnwrapErrorMessage([]byte(`not json`)))
	require.Empty(t, UnwrapErrorMessage(nil))
}
