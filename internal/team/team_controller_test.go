package team

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroups struct {
	names []string
	err   error
}

func (f fakeGroups) GetAllGroups(context.Context) ([]string, error) {
	return f.names, f.err
}

func newTestRouterWith(t *testing.T, groups GroupLookup) (*gin.Engine, *Selector) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	selector, err := NewSelector([]string{"Team A", "Team B"})
	require.NoError(t, err)

	r := gin.New()
	TeamRoutes(r.Group("/api"), selector, groups)
	return r, selector
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := newTestRouterWith(t, fakeGroups{names: []string{"Friday", "Sunday"}})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSelection(t *testing.T, w *httptest.ResponseRecorder) SelectionView {
	t.Helper()
	var body struct {
		Data SelectionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestGetTeamsStartsOnFirstTeam(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/groups/Friday/teams", "")
	require.Equal(t, http.StatusOK, w.Code)

	view := decodeSelection(t, w)
	assert.Equal(t, "Friday", view.Group)
	assert.Equal(t, "Team A", view.Active)
	assert.Equal(t, []Team{{Name: "Team A", IsActive: true}, {Name: "Team B"}}, view.Teams)
}

func TestSetActiveTeam(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/api/groups/Friday/teams/active", `{"index":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Team B", decodeSelection(t, w).Active)

	// Selecting the active team again keeps it active.
	w = doJSON(r, http.MethodPut, "/api/groups/Friday/teams/active", `{"index":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Team B", decodeSelection(t, w).Active)

	w = doJSON(r, http.MethodGet, "/api/groups/Friday/teams", "")
	assert.Equal(t, "Team B", decodeSelection(t, w).Active)

	w = doJSON(r, http.MethodGet, "/api/groups/Sunday/teams", "")
	assert.Equal(t, "Team A", decodeSelection(t, w).Active)
}

func TestSetActiveTeamRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{`{"index":2}`, `{"index":-1}`, `{}`, `nope`} {
		w := doJSON(r, http.MethodPut, "/api/groups/Friday/teams/active", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := doJSON(r, http.MethodGet, "/api/groups/Friday/teams", "")
	assert.Equal(t, "Team A", decodeSelection(t, w).Active)
}

func TestSetActiveTeamRequiresRegisteredGroup(t *testing.T) {
	r, selector := newTestRouterWith(t, fakeGroups{names: []string{"Friday"}})

	w := doJSON(r, http.MethodPut, "/api/groups/Ghost/teams/active", `{"index":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	active, err := ActiveTeam(selector.Teams("Ghost"))
	require.NoError(t, err)
	assert.Equal(t, "Team A", active.Name)
	assert.Equal(t, 0, selector.size())

	r, _ = newTestRouterWith(t, fakeGroups{err: errors.New("disk gone")})
	w = doJSON(r, http.MethodPut, "/api/groups/Friday/teams/active", `{"index":1}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
