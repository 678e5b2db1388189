package services

import (
	"context"
	"testing"

	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCompanyService(repositories.NewCompanyRepository(), validator.New())
	ctx := context.Background()
	owner := employer()

	created, err := svc.CreateCompany(ctx, db, &dto.CreateCompanyRequest{
		Name:    "  Hooli ",
		Website: "https://hooli.example.com",
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "Hooli", created.Name)
	assert.Equal(t, owner.UserID, created.OwnerID)
	assert.False(t, created.IsVerified)

	got, err := svc.GetCompany(ctx, db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	mine, err := svc.ListMyCompanies(ctx, db, owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	others, err := svc.ListMyCompanies(ctx, db, employer())
	require.NoError(t, err)
	assert.Empty(t, others)

	_, err = svc.SetVerified(ctx, db, created.ID, true, owner)
	assertCode(t, err, apperrors.CodeForbidden)

	verified, err := svc.SetVerified(ctx, db, created.ID, true, admin())
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
}

func TestCompanyServiceErrors(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCompanyService(repositories.NewCompanyRepository(), validator.New())
	ctx := context.Background()

	_, err := svc.CreateCompany(ctx, db, &dto.CreateCompanyRequest{Name: "Nope"}, seeker())
	assertCode(t, err, apperrors.CodeForbidden)

	_, err = svc.CreateCompany(ctx, db, &dto.CreateCompanyRequest{Name: " ", Website: "not a url"}, employer())
	assertCode(t, err, apperrors.CodeValidationFailed)
	appErr, _ := apperrors.AsAppError(err)
	assert.Contains(t, appErr.Details, "name")
	assert.Contains(t, appErr.Details, "website")

	_, err = svc.GetCompany(ctx, db, uuid.NewString())
	assertCode(t, err, apperrors.CodeNotFound)
	_, err = svc.GetCompany(ctx, db, "acme")
	assertCode(t, err, apperrors.CodeNotFound)
	_, err = svc.SetVerified(ctx, db, uuid.NewString(), true, admin())
	assertCode(t, err, apperrors.CodeNotFound)
}
