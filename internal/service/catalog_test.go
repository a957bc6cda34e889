package service

import (
	"context"
	"net/http"
	"testing"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/validation"
	apperrors "travel-backoffice/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentsPage(names ...string) map[string]any {
	agents := make([]map[string]any, 0, len(names))
	for i, name := range names {
		agents = append(agents, map[string]any{"_id": name, "id": "AG-" + string(rune('1'+i)), "name": name})
	}
	return map[string]any{"agents": agents}
}

func validParty() *model.PartyInput {
	return &model.PartyInput{ID: "AG-9", Name: "Blue Sky", Email: "desk@bluesky.example", Phone: "+39 06 1234"}
}

func TestCatalog_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - served from cache until invalidated", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.reply("GET agents/get-all", http.StatusOK, agentsPage("Blue Sky"))
		agents := NewAgentCatalog(env.client, env.dispatcher)

		page, err := agents.List(ctx, env.ws, model.ListParams{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		_, err = agents.List(ctx, env.ws, model.ListParams{})
		require.NoError(t, err)

		assert.Equal(t, 1, env.backend.count("GET agents/get-all"))
	})

	t.Run("Success - parameterized lists are separate entries", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.reply("GET agents/get-all", http.StatusOK, agentsPage("Blue Sky"))
		agents := NewAgentCatalog(env.client, env.dispatcher)

		_, err := agents.List(ctx, env.ws, model.ListParams{Page: 1})
		require.NoError(t, err)
		_, err = agents.List(ctx, env.ws, model.ListParams{Page: 2})
		require.NoError(t, err)

		assert.Equal(t, 2, env.backend.count("GET agents/get-all"))
	})
}

func TestCatalog_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - invalidates every list page", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.reply("GET agents/get-all", http.StatusOK, agentsPage("Blue Sky"))
		env.backend.reply("POST agents/create", http.StatusCreated, map[string]any{
			"agent": map[string]any{"_id": "a9", "id": "AG-9", "name": "Blue Sky"},
		})
		agents := NewAgentCatalog(env.client, env.dispatcher)
		_, err := agents.List(ctx, env.ws, model.ListParams{Page: 1})
		require.NoError(t, err)
		_, err = agents.List(ctx, env.ws, model.ListParams{Page: 2})
		require.NoError(t, err)

		created, err := agents.Create(ctx, env.ws, validParty())
		require.NoError(t, err)
		assert.Equal(t, "a9", created.Ref)

		_, err = agents.List(ctx, env.ws, model.ListParams{Page: 1})
		require.NoError(t, err)
		_, err = agents.List(ctx, env.ws, model.ListParams{Page: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, env.backend.count("GET agents/get-all"))

		activity := env.journal.last()
		require.NotNil(t, activity)
		assert.Equal(t, "createAgent", activity.Mutation)
		assert.Equal(t, "agents", activity.Resource)
		assert.Equal(t, "sara", activity.Actor)
		assert.True(t, activity.Succeeded)

		events := env.published(t)
		require.Len(t, events, 1)
		assert.Equal(t, "instance-test", events[0].Origin)
		assert.ElementsMatch(t, []string{"Agents", "Ledgers"}, events[0].Tags)
	})

	t.Run("Failed - validation never reaches the backend", func(t *testing.T) {
		env := newTestEnv(t)
		agents := NewAgentCatalog(env.client, env.dispatcher)
		in := validParty()
		in.Email = "not-an-email"

		_, err := agents.Create(ctx, env.ws, in)

		var errs validation.Errors
		require.ErrorAs(t, err, &errs)
		assert.True(t, errs.Has("email"))
		assert.Equal(t, 0, env.backend.count("POST agents/create"))
		assert.Nil(t, env.journal.last())
	})

	t.Run("Failed - backend error invalidates nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.backend.reply("GET agents/get-all", http.StatusOK, agentsPage("Blue Sky"))
		env.backend.reply("POST agents/create", http.StatusConflict, map[string]any{"message": "Agent id already exists"})
		agents := NewAgentCatalog(env.client, env.dispatcher)
		_, err := agents.List(ctx, env.ws, model.ListParams{})
		require.NoError(t, err)

		_, err = agents.Create(ctx, env.ws, validParty())

		msg, ok := apperrors.UpstreamMessage(err)
		require.True(t, ok)
		assert.Equal(t, "Agent id already exists", msg)
		_, err = agents.List(ctx, env.ws, model.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, env.backend.count("GET agents/get-all"))

		activity := env.journal.last()
		require.NotNil(t, activity)
		assert.False(t, activity.Succeeded)
		require.NotNil(t, activity.Error)
		assert.Empty(t, env.published(t))
	})
}

func TestCatalog_UpdateUser_invalidatesCurrentUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.backend.reply("GET users/get-user/me", http.StatusOK, map[string]any{
		"user": map[string]any{"_id": "u1", "username": "sara", "role": "Admin", "isActive": true},
	})
	env.backend.reply("PATCH users/update/u1", http.StatusOK, map[string]any{"message": "User updated"})
	users := NewUserCatalog(env.client, env.dispatcher)
	auth := NewAuthService(env.client, env.registry, env.dispatcher)

	_, err := auth.Principal(ctx, env.ws)
	require.NoError(t, err)
	active := true
	_, err = users.Update(ctx, env.ws, "u1", &model.UserInput{
		Name: "Sara", Username: "sara", Role: model.RoleAdmin, IsActive: &active,
		Permissions: []string{model.PermReadTicket},
	})
	require.NoError(t, err)
	_, err = auth.Principal(ctx, env.ws)
	require.NoError(t, err)

	assert.Equal(t, 2, env.backend.count("GET users/get-user/me"))
}

func TestCatalog_Delete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.backend.reply("GET providers/get-provider/p1", http.StatusOK, map[string]any{
		"provider": map[string]any{"_id": "p1", "name": "Alitalia"},
	})
	env.backend.reply("DELETE providers/delete/p1", http.StatusOK, map[string]any{"message": "Provider deleted"})
	providers := NewProviderCatalog(env.client, env.dispatcher)

	provider, err := providers.Get(ctx, env.ws, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alitalia", provider.Name)

	require.NoError(t, providers.Delete(ctx, env.ws, "p1"))

	env.backend.reply("GET providers/get-provider/p1", http.StatusNotFound, map[string]any{"message": "Provider not found"})
	_, err = providers.Get(ctx, env.ws, "p1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 2, env.backend.count("GET providers/get-provider/p1"))
}
