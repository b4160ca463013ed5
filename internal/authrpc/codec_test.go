package authrpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(Subtype)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodec_PlainStruct(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &ValidateTokenResponse{User: &User{ID: "u-1", Email: "a@x.com", IsActive: true, CreatedAt: ts, UpdatedAt: ts}}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"isActive":true`)
	assert.Contains(t, string(data), `"createdAt":"2024-01-02T03:04:05Z"`)

	var out ValidateTokenResponse
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, in, &out)
}

func TestCodec_NullUser(t *testing.T) {
	data, err := Codec{}.Marshal(&ValidateTokenResponse{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":null}`, string(data))

	var out ValidateTokenResponse
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Nil(t, out.User)
}

func TestCodec_ProtoMessage(t *testing.T) {
	in := &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}

	data, err := Codec{}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SERVING")

	out := &healthpb.HealthCheckResponse{}
	require.NoError(t, Codec{}.Unmarshal(data, out))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, out.GetStatus())
}
