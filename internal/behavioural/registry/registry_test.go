package registry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_DuplicateCodeRejected(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Kind{Code: 400, Name: "ClientError"}))

	err := reg.Register(&Kind{Code: 400, Name: "BadRequestError"})
	require.ErrorIs(t, err, ErrDuplicateCode)

	// The original registration survives.
	k, ok := reg.Get(400)
	require.True(t, ok)
	require.Equal(t, "ClientError", k.Name)
}

func TestRegister_NilKind(t *testing.T) {
	reg := NewRegistry()
	require.ErrorIs(t, reg.Register(nil), ErrNilKind)
}

func TestCodes_SortedAscending(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Kind{Code: 999, Name: "BaseError"}))
	require.NoError(t, reg.Register(&Kind{Code: 400, Name: "ClientError"}))
	require.NoError(t, reg.Register(&Kind{Code: 500, Name: "ServerError"}))

	require.Equal(t, []int{400, 500, 999}, reg.Codes())
}

func TestKind_Error(t *testing.T) {
	k := &Kind{Code: 500, Name: "ServerError"}
	require.EqualError(t, k, "ServerError (code 500)")
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(context.Background(), &buf))

	out := buf.String()
	require.Contains(t, out, "Registry with only the BaseError implemented:")
	require.Contains(t, out, "Registry with client and server errors implemented:")
	require.Contains(t, out, "400: ClientError")
	require.Contains(t, out, "500: ServerError")
	require.Contains(t, out, "999: BaseError")
}
