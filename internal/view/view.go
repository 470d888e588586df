package view

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/raysh454/reportview/internal/logging"
	"github.com/raysh454/reportview/internal/report"
	"github.com/raysh454/reportview/internal/reportapi"
)

// User-facing texts of the mutually exclusive empty states.
const (
	FetchErrorText = "Failed to fetch data. Please try again later."
	LoadingText    = "Loading data..."
	NoDataText     = "No data available"
)

// Fetcher loads the report the view displays.
type Fetcher interface {
	FetchFirstReport(ctx context.Context) (*reportapi.Envelope[json.RawMessage], error)
}

// State is a snapshot of one view activation.
type State struct {
	ActivationID string
	ReportID     string
	Loading      bool
	Error        string
	Rows         []report.Row
	Columns      []report.Column
}

// NewState returns the initial state of an activation: loading, no error,
// no rows.
func NewState(reportID string) State {
	return State{
		ActivationID: uuid.NewString(),
		ReportID:     reportID,
		Loading:      true,
		Rows:         []report.Row{},
		Columns:      []report.Column{},
	}
}

// EmptyState returns the text shown in place of the table body. It is empty
// when there are rows to show; otherwise the error wins over loading, which
// wins over the generic no-data message.
func (s State) EmptyState() string {
	if len(s.Rows) > 0 {
		return ""
	}
	switch {
	case s.Error != "":
		return s.Error
	case s.Loading:
		return LoadingText
	default:
		return NoDataText
	}
}

// Cells returns the rendered table body in column order.
func (s State) Cells() [][]string {
	return report.Cells(s.Rows, s.Columns)
}

// View drives report fetches and turns their outcome into a State.
type View struct {
	fetcher Fetcher
	logger  logging.Logger
}

func New(fetcher Fetcher, logger logging.Logger) *View {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &View{
		fetcher: fetcher,
		logger:  logger.With(logging.Field{Key: "component", Value: "view"}),
	}
}

// Activate runs one activation: exactly one fetch, no retry. observe, when
// non-nil, is called with the loading snapshot and then the final one.
//
// reportID is the identifier taken from the page path. It is logged but
// does not select the report yet.
func (v *View) Activate(ctx context.Context, reportID string, observe func(State)) State {
	st := NewState(reportID)
	logger := v.logger.With(logging.Field{Key: "activation_id", Value: st.ActivationID})
	logger.Info("report view activated", logging.Field{Key: "report_id", Value: reportID})

	if observe != nil {
		observe(st)
	}

	env, err := v.fetcher.FetchFirstReport(ctx)
	switch {
	case err != nil:
		logger.Error("error fetching report data", logging.Field{Key: "error", Value: err})
		st.Error = FetchErrorText
	case env == nil || !report.IsArray(env.Message):
		logger.Warn("report response does not contain expected data format",
			logging.Field{Key: "message_kind", Value: messageKind(env)})
	default:
		rows, err := report.DecodeRows(env.Message)
		if err != nil {
			logger.Warn("report response does not contain expected data format",
				logging.Field{Key: "error", Value: err})
			break
		}
		st.Rows = rows
		logger.Info("report data loaded", logging.Field{Key: "rows", Value: len(rows)})
	}

	st.Columns = report.DeriveColumns(st.Rows)
	st.Loading = false

	if observe != nil {
		observe(st)
	}
	return st
}

func messageKind(env *reportapi.Envelope[json.RawMessage]) string {
	if env == nil || len(env.Message) == 0 {
		return "missing"
	}
	return report.ValueOf(env.Message).Kind().String()
}

// ReportIDFromPath returns the part of path between the first "report/"
// and the next one (or the end), or "" when path has none.
func ReportIDFromPath(path string) string {
	_, after, found := strings.Cut(path, "report/")
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(after, "report/")
	return id
}
