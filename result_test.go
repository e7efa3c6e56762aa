package open311

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Err(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: 200},
		{status: 201},
		{status: 400, want: ErrBadRequest},
		{status: 401, want: ErrUnauthorized},
		{status: 403, want: ErrForbidden},
		{status: 404, want: ErrNotFound},
		{status: 409, want: ErrConflict},
		{status: 500, want: ErrInternalServerError},
		{status: 502, want: ErrBadGateway},
	}

	for _, tt := range tests {
		r := &Result{StatusCode: tt.status, Raw: []byte("detail")}
		err := r.Err()
		if tt.want == nil {
			assert.NoError(t, err, tt.status)
			assert.True(t, r.OK())
			continue
		}
		assert.ErrorIs(t, err, tt.want, tt.status)
		assert.False(t, r.OK())
	}
}

func TestResult_Err_UnmappedStatus(t *testing.T) {
	err := (&Result{StatusCode: 418}).Err()
	assert.EqualError(t, err, "http 418: I'm a teapot")
}
