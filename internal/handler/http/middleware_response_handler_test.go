package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		want        int
	}{
		{name: "single 201", statusCodes: []int{http.StatusCreated}, want: http.StatusCreated},
		{name: "single 404", statusCodes: []int{http.StatusNotFound}, want: http.StatusNotFound},
		{name: "double call, first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, want: http.StatusAccepted},
		{name: "triple call, first wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.want, w.status)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ---- Write ----

func TestResponseWriter_Write_ImplicitOKAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte(`{"message":`))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	_, err = w.Write([]byte(`"ok"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 16, w.size)
	assert.Equal(t, `{"message":"ok"}`, rr.Body.String())
}

func TestResponseWriter_Write_KeepsExplicitStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("created"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, len("created"), w.size)
}

type failingWriter struct {
	http.ResponseWriter
}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestResponseWriter_Write_Error(t *testing.T) {
	w := &responseWriter{ResponseWriter: failingWriter{httptest.NewRecorder()}}

	_, err := w.Write([]byte("x"))

	assert.Error(t, err)
	assert.Zero(t, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
