package errkind

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrCodePredicates(t *testing.T) {
	tests := []struct {
		name string
		code Code
		is   func(Code) bool
		want bool
	}{
		{"ident code is ident error", CodeInvalidIdent, IsIdentError, true},
		{"ident code is not import error", CodeInvalidIdent, IsImportError, false},
		{"import code is import error", CodeFailedToLaunch, IsImportError, true},
		{"solve code is solver error", CodeUnsolvedType, IsSolverError, true},
		{"synth code is synthesis error", CodeMalformedInput, IsSynthesisError, true},
		{"cli code is cli error", CodeIoError, IsCLIError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.is(tt.code))
		})
	}
}

func TestEveryRegisteredCodeHasInfo(t *testing.T) {
	for code, info := range Registry {
		assert.Equal(t, code, info.Code)
		assert.NotEmpty(t, info.Phase)
		assert.NotEmpty(t, info.Description)
	}
}

func TestErrorsAsRecoversKinded(t *testing.T) {
	err := error(InvalidIdent{Value: "1foo"})
	var k Kinded
	assert.True(t, errors.As(err, &k))
	assert.Equal(t, CodeInvalidIdent, k.ErrCode())
}

func TestWrappedErrorStillResolvesKind(t *testing.T) {
	err := fmt.Errorf("while validating: %w", UnsolvedField{Field: "name"})
	var k Kinded
	assert.True(t, errors.As(err, &k))
	assert.True(t, IsSolverError(k.ErrCode()))
}
