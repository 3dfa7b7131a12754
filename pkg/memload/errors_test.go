package memload

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"unsupported value", ErrUnsupportedValue, ExitEncodingError},
		{"connection failed", ErrConnectionFailed, ExitConnectionError},
		{"execution failed", ErrExecutionFailed, ExitExecutionFailed},
		{"graph missing", ErrGraphNotFound, ExitGraphMissing},
		{"wrapped sentinel", fmt.Errorf("load: %w", ErrExecutionFailed), ExitExecutionFailed},
		{"connection refused pattern", errors.New("dial tcp: connection refused"), ExitConnectionError},
		{"no such host pattern", errors.New("lookup db: no such host"), ExitConnectionError},
		{"unclassified", errors.New("something else"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
