package zooclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-zoo/internal/platform/httpclient"
	"animal-zoo/internal/router"
	"animal-zoo/internal/zooclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *zooclient.Client {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := zooclient.New(ts.URL, 0)
	require.NoError(t, err)
	return c
}

func TestClient_AdmitActAndJournal(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	// args como strings, como llegan desde la CLI
	dog, err := c.Admit(ctx, "Dog", "Rex", "5", "shepherd")
	require.NoError(t, err)
	assert.Equal(t, "dog", dog.Type)
	assert.Equal(t, "Dog Rex, age: 5, health: 100", dog.Description)

	res, err := c.Act(ctx, dog.ID, zooclient.Action{Action: "learn_trick", Trick: "sit"})
	require.NoError(t, err)
	assert.Equal(t, "Rex learned a new trick: sit", res.Message)
	assert.Equal(t, []string{"sit"}, res.Resident.Tricks)

	got, err := c.Get(ctx, dog.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"sit"}, got.Tricks)

	entries, err := c.Journal(ctx, dog.ID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "learn_trick", entries[0].Action)
	assert.Equal(t, "admitted", entries[1].Action)
}

func TestClient_CensusAndConcert(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	_, err := c.Admit(ctx, "cat", "Vaska", 4, "black")
	require.NoError(t, err)
	_, err = c.Admit(ctx, "bird", "Gosha", 2, 0.7)
	require.NoError(t, err)

	census, err := c.Census(ctx)
	require.NoError(t, err)
	assert.Equal(t, zooclient.Census{Dogs: 0, Cats: 1, Birds: 1, Total: 2}, census)

	sounds, err := c.Concert(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vaska meows: Meow-meow!", "Gosha sings: Tweet-tweet!"}, sounds)

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClient_UnknownKindSurfacesHint(t *testing.T) {
	c := newClient(t)

	_, err := c.Admit(context.Background(), "dogg", "Rex", 5, "shepherd")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpclient.StatusOf(err))

	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, "Unknown animal type: dogg", he.Message)
	assert.Equal(t, "did you mean dog?", he.Hint)
}
