package controller_test

import (
	"net/http"
	"testing"

	"hackathon_judging_backend/internal/controller"
	"hackathon_judging_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitEvaluationRequiresToken(t *testing.T) {
	router := newRouter(newSeededStore(), nil)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", "", controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 4},
	})

	requireStatus(t, recorder, http.StatusUnauthorized)
}

func TestSubmitEvaluationRejectsGarbageToken(t *testing.T) {
	router := newRouter(newSeededStore(), nil)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", "not-a-jwt", controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 4},
	})

	requireStatus(t, recorder, http.StatusUnauthorized)
}

func TestSubmitEvaluationRejectsParticipantRole(t *testing.T) {
	router := newRouter(newSeededStore(), nil)
	token := tokenFor(t, 500, model.Participant)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", token, controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 4},
	})

	requireStatus(t, recorder, http.StatusForbidden)
}

func TestSubmitEvaluationHappyPath(t *testing.T) {
	store := newSeededStore()
	router := newRouter(store, nil)
	token := tokenFor(t, 500, model.JudgeRole)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", token, controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 3},
	})

	requireStatus(t, recorder, http.StatusOK)

	var data struct {
		SavedEntries int `json:"savedEntries"`
	}
	decodeData(t, recorder, &data)
	assert.Equal(t, 2, data.SavedEntries)

	entries, err := store.ListByJudge(50, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, uint(10), entry.TeamID)
	}
}

func TestSubmitEvaluationUserWithoutJudgeAssignment(t *testing.T) {
	router := newRouter(newSeededStore(), nil)
	// Valid judge token, but user 999 is not assigned to hackathon 1.
	token := tokenFor(t, 999, model.JudgeRole)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", token, controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 4},
	})

	requireStatus(t, recorder, http.StatusForbidden)
}

func TestSubmitEvaluationClosedWindow(t *testing.T) {
	store := newSeededStore()
	h := store.Hackathons[1]
	h.EvaluationOpen = false
	store.Hackathons[1] = h
	router := newRouter(store, nil)
	token := tokenFor(t, 500, model.JudgeRole)

	recorder := performRequest(t, router, http.MethodPost, "/api/hackathons/1/evaluations", token, controller.SubmitEvaluationRequest{
		TeamID: 10,
		Scores: map[uint]int{100: 5, 101: 4},
	})

	requireStatus(t, recorder, http.StatusForbidden)
}

func TestSubmitEvaluationValidationFailures(t *testing.T) {
	router := newRouter(newSeededStore(), nil)
	token := tokenFor(t, 500, model.JudgeRole)

	cases := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{
			name: "missing criterion score",
			path: "/api/hackathons/1/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 10, Scores: map[uint]int{100: 5}},
			want: http.StatusBadRequest,
		},
		{
			name: "stars above five",
			path: "/api/hackathons/1/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 10, Scores: map[uint]int{100: 6, 101: 4}},
			want: http.StatusBadRequest,
		},
		{
			name: "stars below one",
			path: "/api/hackathons/1/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 10, Scores: map[uint]int{100: 0, 101: 4}},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown team",
			path: "/api/hackathons/1/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 99, Scores: map[uint]int{100: 5, 101: 4}},
			want: http.StatusNotFound,
		},
		{
			name: "unknown hackathon",
			path: "/api/hackathons/42/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 10, Scores: map[uint]int{100: 5, 101: 4}},
			want: http.StatusNotFound,
		},
		{
			name: "non-numeric hackathon id",
			path: "/api/hackathons/abc/evaluations",
			body: controller.SubmitEvaluationRequest{TeamID: 10, Scores: map[uint]int{100: 5, 101: 4}},
			want: http.StatusBadRequest,
		},
		{
			name: "missing body fields",
			path: "/api/hackathons/1/evaluations",
			body: map[string]interface{}{},
			want: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := performRequest(t, router, http.MethodPost, tc.path, token, tc.body)
			requireStatus(t, recorder, tc.want)
		})
	}
}
