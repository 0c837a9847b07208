package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckField_StopsAtFirstFailure(t *testing.T) {
	fe := checkField("fullName", "", NotEmpty(), MinLen(5), MaxLen(30))

	require.NotNil(t, fe)
	assert.Equal(t, KindEmpty, fe.Kind)
}

func TestMinLen_CountsRunes(t *testing.T) {
	assert.Nil(t, MinLen(5)("fullName", "héllo"))
	assert.NotNil(t, MinLen(5)("fullName", "héll"))
}

func TestObjectID_IsCaseInsensitiveHex(t *testing.T) {
	assert.Nil(t, ObjectID()("id", "507F1F77BCF86CD799439011"))
	assert.Nil(t, ObjectID()("id", "507f1f77bcf86cd799439011"))
	assert.NotNil(t, ObjectID()("id", "507f1f77bcf86cd79943901g"))
}

func TestRules_AreDeterministic(t *testing.T) {
	rule := MaxLen(3)

	first := rule("fullName", "abcd")
	second := rule("fullName", "abcd")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}
