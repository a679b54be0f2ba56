package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type rawEnvelope struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Body    json.RawMessage `json:"body"`
}

func TestRespond(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        any
		wantSuccess bool
		wantBody    string
	}{
		{"ok", http.StatusOK, []string{"a"}, true, `["a"]`},
		{"created", http.StatusCreated, Message{Message: "done"}, true, `{"message":"done"}`},
		{"client error", http.StatusNotFound, Message{Message: "user not found"}, false, `{"message":"user not found"}`},
		{"server error", http.StatusInternalServerError, Message{Message: "internal error"}, false, `{"message":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, tt.status, tt.body)

			assert.Equal(t, tt.status, w.Code)
			var env rawEnvelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.wantSuccess, env.Success)
			assert.Equal(t, tt.status, env.Status)
			assert.JSONEq(t, tt.wantBody, string(env.Body))
		})
	}
}

func TestAbortWithFail(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithFail(c, http.StatusUnauthorized, "invalid token")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"status":401,"body":{"message":"invalid token"}}`, w.Body.String())
}

func TestSignupRequest_RejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	var req SignupRequest
	err := json.Unmarshal([]byte(`{"email":"not-an-email","password":"password123","name":"A","tel":"1"}`), &req)
	assert.Error(t, err)
}
