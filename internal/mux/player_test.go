package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"blackjack-server/internal/jwt"
	"blackjack-server/internal/util"
	"blackjack-server/pkg/model"

	"github.com/stretchr/testify/assert"
)

func Test_postPlayer(t *testing.T) {
	requireDB(t)
	m := newTestMux()
	m.config.playerCreateDelay = time.Second * -1

	ts := httptest.NewServer(m)
	defer ts.Close()

	var obj errorResponse
	assertPost(t, ts, "/player", "{}", &obj, 400)
	assert.Equal(t, "missing or invalid email address", obj.Message)

	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		DisplayName: "&",
		Email:       "",
		Password:    "",
	}, &obj, 400)
	assert.Equal(t, "display name must only contain letters, numbers, and spaces, and be 40 characters or less", obj.Message)

	email := util.RandomEmail()
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    email,
		Password: "",
	}, &obj, 400)
	assert.Equal(t, "password must be 6 or more characters", obj.Message)

	var pObj *playerWithEmail
	assertPost(t, ts, "/player", playerPayload{
		Email:    email,
		Password: "123456",
	}, &pObj, 201)
	assert.Greater(t, pObj.ID, int64(0))
	assert.Equal(t, email, pObj.Email)
	assert.NotEmpty(t, pObj.DisplayName)

	obj = errorResponse{}
	assertPost(t, ts, "/player", &playerPayload{
		Email:    email,
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "email address is already taken", obj.Message)

	// test display name
	email = util.RandomEmail()
	assertPost(t, ts, "/player", playerPayload{
		Email:       email,
		Password:    "123456",
		DisplayName: "Tommy",
	}, &pObj, 201)
	assert.Greater(t, pObj.ID, int64(0))
	assert.Equal(t, email, pObj.Email)
	assert.Equal(t, "Tommy", pObj.DisplayName)

	m.config.playerCreateDelay = time.Hour
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    util.RandomEmail(),
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "please wait before creating another player", obj.Message)
}

func Test_postPlayerAuth(t *testing.T) {
	requireDB(t)
	setupJWT()

	ts := httptest.NewServer(newTestMux())
	defer ts.Close()

	email := util.RandomEmail()
	pw := "my-password"

	player, err := model.CreatePlayer(cbg, email, "Test Player", pw, "")
	if err != nil {
		t.Error(err)
		return
	}

	var resp postPlayerAuthResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    email,
		Password: pw,
	}, &resp, 200)
	id, err := jwt.ValidUserID(resp.JWT)
	assert.NoError(t, err)
	assert.Equal(t, player.ID, id)
	assert.Equal(t, email, resp.Player.Email)

	var playerObj *playerWithEmail
	assertGet(t, ts, fmt.Sprintf("/player/auth/%s", resp.JWT), &playerObj, 200)
	assert.Equal(t, email, playerObj.Email)
}

func Test_getPlayerAuthJWT_BadRequests(t *testing.T) {
	requireDB(t)
	setupJWT()

	ts := httptest.NewServer(newTestMux())
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/player/auth/bad", &errObj, 401)
	assert.Contains(t, errObj.Message, "token contains an invalid number of segments")

	// this should only happen if user is deleted from database
	signedToken, _ := jwt.Sign(-1)
	errObj = errorResponse{}
	assertGet(t, ts, fmt.Sprintf("/player/auth/%s", signedToken), &errObj, 404)
	assert.Equal(t, "player does not exist", errObj.Message)
}

func Test_postPlayerAuth_BadCreds(t *testing.T) {
	requireDB(t)
	setupJWT()

	ts := httptest.NewServer(newTestMux())
	defer ts.Close()

	email := util.RandomEmail()
	_, err := model.CreatePlayer(cbg, email, "Test Player", "my-password", "")
	if err != nil {
		t.Error(err)
		return
	}

	var errObj errorResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    email,
		Password: "bad-password",
	}, &errObj, 401)
	assert.Equal(t, "invalid email address and/or password", errObj.Message)
}

func Test_postPlayerID(t *testing.T) {
	requireDB(t)
	setupJWT()

	ts := httptest.NewServer(newTestMux())
	defer ts.Close()

	p1, jwt1 := player()
	p2, jwt2 := player()

	var resp map[string]string
	assertPost(t, ts, fmt.Sprintf("/player/%d", p1.ID), postPlayerIDPayload{
		DisplayName: "New Name",
	}, &resp, 200, jwt1)
	assert.Equal(t, statusOK, resp)

	updated, err := model.GetPlayerByID(cbg, p1.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.DisplayName)

	// cannot update another player
	var errObj errorResponse
	assertPost(t, ts, fmt.Sprintf("/player/%d", p1.ID), postPlayerIDPayload{
		DisplayName: "Sneaky",
	}, &errObj, 403, jwt2)

	// bad display name
	errObj = errorResponse{}
	assertPost(t, ts, fmt.Sprintf("/player/%d", p2.ID), postPlayerIDPayload{
		DisplayName: "&",
	}, &errObj, 400, jwt2)
	assert.Equal(t, "display name must only contain letters, numbers, and spaces", errObj.Message)

	// bad email
	errObj = errorResponse{}
	assertPost(t, ts, fmt.Sprintf("/player/%d", p2.ID), postPlayerIDPayload{
		Email: "not-an-email",
	}, &errObj, 400, jwt2)
	assert.Equal(t, "invalid email address", errObj.Message)
}

func Test_getPlayer(t *testing.T) {
	requireDB(t)
	setupJWT()

	ts := httptest.NewServer(newTestMux())
	defer ts.Close()

	admin, adminJWT := player()
	assert.NoError(t, admin.SetIsSiteAdmin(cbg, true))

	target, targetJWT := player()

	// non-admins are forbidden
	var errObj errorResponse
	assertGet(t, ts, "/player", &errObj, 403, targetJWT)

	var players []*playerWithEmail
	assertGet(t, ts, "/player?search="+target.Email, &players, 200, adminJWT)
	if assert.Len(t, players, 1) {
		assert.Equal(t, target.ID, players[0].ID)
		assert.Equal(t, target.Email, players[0].Email)
	}
}
