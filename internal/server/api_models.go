package server

import (
	"github.com/raysh454/reportview/internal/report"
	"github.com/raysh454/reportview/internal/view"
)

// ReportStateResponse is the JSON form of one report view activation.
type ReportStateResponse struct {
	ActivationID string          `json:"activation_id" example:"4f1c2a9e-6b0d-4a57-9d3e-1f2b3c4d5e6f"`
	ReportID     string          `json:"report_id,omitempty" example:"sales-2024"`
	Loading      bool            `json:"loading" example:"false"`
	Error        string          `json:"error,omitempty" example:"Failed to fetch data. Please try again later."`
	EmptyState   string          `json:"empty_state,omitempty" example:"No data available"`
	Columns      []report.Column `json:"columns"`
	Rows         [][]string      `json:"rows" example:"[[\"1\",\"a\"]]"`
}

func newReportStateResponse(st view.State) ReportStateResponse {
	return ReportStateResponse{
		ActivationID: st.ActivationID,
		ReportID:     st.ReportID,
		Loading:      st.Loading,
		Error:        st.Error,
		EmptyState:   st.EmptyState(),
		Columns:      st.Columns,
		Rows:         st.Cells(),
	}
}

// HealthResponse reports liveness.
type HealthResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"internal error"`
}
