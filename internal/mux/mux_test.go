package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"blackjack-server/internal/jwt"
	"blackjack-server/internal/util"
	"blackjack-server/pkg/model"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	requireDB(t)
	setupJWT()
	m := newTestMux()

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	player, _ := model.CreatePlayer(cbg, util.RandomEmail(), "x", "", "")
	token, _ := jwt.Sign(player.ID)

	// test using auth header
	var str string
	resp := assertGetWithResp(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	assert.Equal(t, strconv.FormatInt(player.ID, 10), resp.Header.Get("Blackjack-UserID"))

	// test using query parameter
	resp = assertGetWithResp(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	assert.Equal(t, strconv.FormatInt(player.ID, 10), resp.Header.Get("Blackjack-UserID"))
}

func Test_adminRouter(t *testing.T) {
	requireDB(t)
	setupJWT()
	m := newTestMux()

	m.adminRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	player, _ := model.CreatePlayer(cbg, util.RandomEmail(), "x", "", "")
	token, _ := jwt.Sign(player.ID)

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 403, token)
	assert.Equal(t, "Forbidden", errObj.Message)

	_ = player.SetIsSiteAdmin(cbg, true)

	var str string
	assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
}
