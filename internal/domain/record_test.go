package domain_test

import (
	"testing"

	"github.com/jmallory/roster-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFieldsValidate(t *testing.T) {
	valid := domain.RecordFields{Name: "John", Email: "j@x.com", Age: 30}
	require.NoError(t, valid.Validate())

	longName := make([]byte, domain.MaxNameLength+1)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name    string
		fields  domain.RecordFields
		wantErr error
	}{
		{
			name:    "empty name",
			fields:  domain.RecordFields{Name: "", Email: "j@x.com", Age: 30},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "whitespace-only name",
			fields:  domain.RecordFields{Name: "   ", Email: "j@x.com", Age: 30},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "name too long",
			fields:  domain.RecordFields{Name: string(longName), Email: "j@x.com", Age: 30},
			wantErr: domain.ErrNameTooLong,
		},
		{
			name:    "empty email",
			fields:  domain.RecordFields{Name: "John", Email: "", Age: 30},
			wantErr: domain.ErrEmptyEmail,
		},
		{
			name:    "email without at sign",
			fields:  domain.RecordFields{Name: "John", Email: "jx.com", Age: 30},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			fields:  domain.RecordFields{Name: "John", Email: "j@xcom", Age: 30},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "email with trailing dot",
			fields:  domain.RecordFields{Name: "John", Email: "j@x.com.", Age: 30},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "email with two at signs",
			fields:  domain.RecordFields{Name: "John", Email: "j@@x.com", Age: 30},
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "negative age",
			fields:  domain.RecordFields{Name: "John", Email: "j@x.com", Age: -1},
			wantErr: domain.ErrAgeOutOfRange,
		},
		{
			name:    "age above maximum",
			fields:  domain.RecordFields{Name: "John", Email: "j@x.com", Age: 151},
			wantErr: domain.ErrAgeOutOfRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fields.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRecordFieldsValidateBoundaryAges(t *testing.T) {
	// Zero and the maximum are both legal ages.
	assert.NoError(t, domain.RecordFields{Name: "Baby", Email: "b@x.com", Age: 0}.Validate())
	assert.NoError(t, domain.RecordFields{Name: "Elder", Email: "e@x.com", Age: 150}.Validate())
}

func TestRecordPatchValidate(t *testing.T) {
	name := "Jane"
	badEmail := "not-an-email"
	age := 200

	t.Run("empty patch fails", func(t *testing.T) {
		err := domain.RecordPatch{}.Validate()
		assert.ErrorIs(t, err, domain.ErrNoFields)
	})

	t.Run("single valid field passes", func(t *testing.T) {
		assert.NoError(t, domain.RecordPatch{Name: &name}.Validate())
	})

	t.Run("only supplied fields are checked", func(t *testing.T) {
		// Bad email present alongside a valid name: email is checked.
		err := domain.RecordPatch{Name: &name, Email: &badEmail}.Validate()
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("out-of-range age fails", func(t *testing.T) {
		err := domain.RecordPatch{Age: &age}.Validate()
		assert.ErrorIs(t, err, domain.ErrAgeOutOfRange)
	})
}

func TestRecordPatchApplyTo(t *testing.T) {
	base := domain.RecordFields{Name: "John", Email: "j@x.com", Age: 30}

	newName := "Johnny"
	applied := domain.RecordPatch{Name: &newName}.ApplyTo(base)

	assert.Equal(t, "Johnny", applied.Name)
	assert.Equal(t, "j@x.com", applied.Email)
	assert.Equal(t, 30, applied.Age)

	// The base value is unchanged.
	assert.Equal(t, "John", base.Name)
}
