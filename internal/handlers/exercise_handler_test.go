package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go_workout_tracker/internal/model"
	"go_workout_tracker/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExerciseHandler_AddExercise(t *testing.T) {
	rpe := 8.5
	order := 2

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(es *mocks.ExerciseService)
		wantStatus int
		wantError  string
	}{
		{
			name: "success",
			body: `{"programId":1,"name":"Row","sets":3,"reps":"8-10","rpe":8.5,"orderIndex":2}`,
			setupMock: func(es *mocks.ExerciseService) {
				es.On("AddExercise", mock.Anything, &model.CreateExerciseRequest{
					ProgramID: 1, Name: "Row", Sets: 3, Reps: "8-10", RPE: &rpe, OrderIndex: &order,
				}).Return(&model.Exercise{ID: 4, ProgramID: 1, Name: "Row", Sets: 3, Reps: "8-10", RPE: &rpe, OrderIndex: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{name: "missing program id", body: `{"name":"Row","sets":3,"reps":"5"}`, wantStatus: http.StatusBadRequest, wantError: "programId is required"},
		{name: "missing name", body: `{"programId":1,"sets":3,"reps":"5"}`, wantStatus: http.StatusBadRequest, wantError: "name is required"},
		{name: "missing sets", body: `{"programId":1,"name":"Row","reps":"5"}`, wantStatus: http.StatusBadRequest, wantError: "sets is required"},
		{name: "missing reps", body: `{"programId":1,"name":"Row","sets":3}`, wantStatus: http.StatusBadRequest, wantError: "reps is required"},
		{name: "negative sets", body: `{"programId":1,"name":"Row","sets":-1,"reps":"5"}`, wantStatus: http.StatusBadRequest},
		{name: "rpe above range", body: `{"programId":1,"name":"Row","sets":3,"reps":"5","rpe":11}`, wantStatus: http.StatusBadRequest},
		{name: "rpe below range", body: `{"programId":1,"name":"Row","sets":3,"reps":"5","rpe":0.5}`, wantStatus: http.StatusBadRequest},
		{name: "rpe off step", body: `{"programId":1,"name":"Row","sets":3,"reps":"5","rpe":7.3}`, wantStatus: http.StatusBadRequest, wantError: "rpe must be a multiple of 0.5"},
		{name: "sets wrong type", body: `{"programId":1,"name":"Row","sets":"three","reps":"5"}`, wantStatus: http.StatusBadRequest, wantError: "Invalid JSON body"},
		{
			name: "program does not exist",
			body: `{"programId":404,"name":"Row","sets":3,"reps":"5"}`,
			setupMock: func(es *mocks.ExerciseService) {
				es.On("AddExercise", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("gormExerciseRepository.Create: program 404 does not exist: %w", model.ErrForeignKeyViolation)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to add exercise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := mocks.NewExerciseService(t)
			if tt.setupMock != nil {
				tt.setupMock(es)
			}
			rr := doRequest(t, newRouter(nil, es, nil), http.MethodPost, "/api/exercises", tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			if tt.wantStatus != http.StatusOK {
				var errResp model.APIErrorResponse
				decodeBody(t, rr, &errResp)
				assert.NotEmpty(t, errResp.Error)
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, errResp.Error)
				}
				if tt.wantStatus == http.StatusInternalServerError {
					assert.Contains(t, errResp.Details, "does not exist")
				} else {
					assert.Empty(t, errResp.Details)
				}
				return
			}
			var got model.Exercise
			decodeBody(t, rr, &got)
			assert.Equal(t, int64(4), got.ID)
			assert.Equal(t, 8.5, *got.RPE)
		})
	}
}

func TestExerciseHandler_GetExercise(t *testing.T) {
	t.Run("found with null rpe", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		es.On("GetExercise", mock.Anything, int64(2)).Return(&model.Exercise{ID: 2, ProgramID: 1, Name: "Plank", Sets: 3, Reps: "60s"}, nil).Once()

		rr := doRequest(t, newRouter(nil, es, nil), http.MethodGet, "/api/exercises/2", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":2,"programId":1,"name":"Plank","sets":3,"reps":"60s","rpe":null,"notes":"","orderIndex":0,"createdAt":"0001-01-01T00:00:00Z"}`, rr.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		es.On("GetExercise", mock.Anything, int64(3)).Return(nil, model.ErrNotFound).Once()

		rr := doRequest(t, newRouter(nil, es, nil), http.MethodGet, "/api/exercises/3", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Exercise not found"}`, rr.Body.String())
	})
}

func TestExerciseHandler_UpdateExercise(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		es.On("UpdateExercise", mock.Anything, int64(8), &model.UpdateExerciseRequest{Name: "Curl", Sets: 4, Reps: "10", Notes: "slow"}).
			Return(&model.Exercise{ID: 8, Name: "Curl", Sets: 4, Reps: "10", Notes: "slow"}, nil).Once()

		rr := doRequest(t, newRouter(nil, es, nil), http.MethodPut, "/api/exercises/8", `{"name":"Curl","sets":4,"reps":"10","notes":"slow"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		es.On("UpdateExercise", mock.Anything, int64(9), mock.Anything).Return(nil, model.ErrNotFound).Once()

		rr := doRequest(t, newRouter(nil, es, nil), http.MethodPut, "/api/exercises/9", `{"name":"Curl","sets":4,"reps":"10"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Exercise not found"}`, rr.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		es.On("UpdateExercise", mock.Anything, int64(9), mock.Anything).Return(nil, errors.New("deadlock detected")).Once()

		rr := doRequest(t, newRouter(nil, es, nil), http.MethodPut, "/api/exercises/9", `{"name":"Curl","sets":4,"reps":"10"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Failed to update exercise","details":"deadlock detected"}`, rr.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		es := mocks.NewExerciseService(t)
		rr := doRequest(t, newRouter(nil, es, nil), http.MethodPut, "/api/exercises/x", `{"name":"Curl","sets":4,"reps":"10"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestExerciseHandler_DeleteExercise(t *testing.T) {
	es := mocks.NewExerciseService(t)
	es.On("DeleteExercise", mock.Anything, int64(12)).Return(nil).Once()

	rr := doRequest(t, newRouter(nil, es, nil), http.MethodDelete, "/api/exercises/12", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}
