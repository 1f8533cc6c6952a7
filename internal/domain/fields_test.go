package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldPathRoundtrip(t *testing.T) {
	require.Equal(t, "participants.email", FieldEmail.Path())
	require.Equal(t, "session.trainingHall", FieldTrainingHall.Path())
	require.Equal(t, "global.sessions", FieldSessions.Path())

	f, err := FieldFromPath("participants.email")
	require.NoError(t, err)
	require.Equal(t, FieldEmail, f)

	_, err = FieldFromPath("email")
	require.Error(t, err)
	_, err = FieldFromPath("unknown.email")
	require.Error(t, err)
}

func TestFieldErrorsJSON(t *testing.T) {
	errs := FieldErrors{
		FieldEmail:    "Invalid email address",
		FieldSessions: "Add at least one session plan",
	}

	data, err := json.Marshal(errs)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "Invalid email address", raw["participants.email"])
	require.Equal(t, "Add at least one session plan", raw["global.sessions"])

	var decoded FieldErrors
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, errs, decoded)
}

func TestStatusBuckets(t *testing.T) {
	require.Equal(t, BucketApproved, StatusApproved.Bucket())
	require.Equal(t, BucketApproved, StatusUpcoming.Bucket())
	require.Equal(t, BucketApproved, StatusCompleted.Bucket())
	require.Equal(t, BucketRejected, StatusRejected.Bucket())
	require.Equal(t, BucketRejected, StatusCancelled.Bucket())
	require.Equal(t, BucketPending, StatusPending.Bucket())
	require.Equal(t, BucketUnknown, BookingStatus("draft").Bucket())

	// нормализация не зависит от регистра источника
	require.Equal(t, StatusUpcoming, NormalizeStatus(" Upcoming "))
}
