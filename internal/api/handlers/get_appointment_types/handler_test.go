package get_appointment_types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/appointment-types", nil)
	rec := httptest.NewRecorder()

	NewHandler(noopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AppointmentTypesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Types, 4)

	assert.Equal(t, AppointmentType{Key: "consultation", Label: "General Consultation", DurationMinutes: 30}, resp.Types[0])
	assert.Equal(t, AppointmentType{Key: "followup", Label: "Follow-up Visit", DurationMinutes: 15}, resp.Types[1])
	assert.Equal(t, AppointmentType{Key: "physical", Label: "Physical Examination", DurationMinutes: 45}, resp.Types[2])
	assert.Equal(t, AppointmentType{Key: "specialist", Label: "Specialist Consultation", DurationMinutes: 60}, resp.Types[3])
}
