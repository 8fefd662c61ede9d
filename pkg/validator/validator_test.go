package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFDIToothTag(t *testing.T) {
	require.NoError(t, Register())

	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	require.True(t, ok)

	type payload struct {
		Teeth []int `binding:"omitempty,dive,fdi_tooth"`
	}

	assert.NoError(t, v.Struct(payload{Teeth: []int{11, 48, 85}}))
	assert.NoError(t, v.Struct(payload{}))

	for _, tooth := range []int{0, 9, 10, 19, 49, 90, 111} {
		assert.Error(t, v.Struct(payload{Teeth: []int{tooth}}), "tooth %d should be rejected", tooth)
	}
}
