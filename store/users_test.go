package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookface/apperr"
	"bookface/models"
)

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	mustRegister(t, "John", "Doe", "john.doe@test.com")

	reg, err := models.NewRegistration("Johnny", "Doe", "John.Doe@Test.COM", "secret1", "secret1")
	require.NoError(t, err)

	_, err = testStore.Register(ctx, reg)
	assert.ErrorIs(t, err, apperr.ErrDuplicateEmail)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestAuthenticate(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	mustRegister(t, "John", "Doe", "john.doe@test.com")

	t.Run("valid credentials", func(t *testing.T) {
		user, err := testStore.Authenticate(ctx, "John.Doe@test.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "john.doe@test.com", user.Email)
		assert.Empty(t, user.Password)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errWrongPass := testStore.Authenticate(ctx, "john.doe@test.com", "nope123")
		_, errNoUser := testStore.Authenticate(ctx, "nobody@test.com", "secret1")
		assert.ErrorIs(t, errWrongPass, apperr.ErrInvalidCredentials)
		assert.ErrorIs(t, errNoUser, apperr.ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	user := mustRegister(t, "John", "Doe", "john.doe@test.com")

	upd, err := models.NewProfileUpdate("  Jonathan ", "Doe", " Hello there ")
	require.NoError(t, err)
	require.NoError(t, testStore.UpdateProfile(ctx, user.ID, upd))

	got, err := testStore.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jonathan", got.FirstName)
	assert.Equal(t, "Hello there", got.Bio)
}

func TestSuggestedFriends_ExcludesSelfAndFriends(t *testing.T) {
	cleanTables(t)
	ctx := context.Background()

	john := mustRegister(t, "John", "Doe", "john@test.com")
	jane := mustRegister(t, "Jane", "Smith", "jane@test.com")
	mary := mustRegister(t, "Mary", "Major", "mary@test.com")

	require.NoError(t, testStore.SendFriendRequest(ctx, john.ID, jane.ID))
	reqs, err := testStore.PendingRequestsFor(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.NoError(t, testStore.AcceptFriendRequest(ctx, reqs[0].ID, jane.ID))

	suggested, err := testStore.SuggestedFriends(ctx, john.ID, 10)
	require.NoError(t, err)
	require.Len(t, suggested, 1)
	assert.Equal(t, mary.ID, suggested[0].ID)
}
